// Package raster loads background images and scales them to the canvas.
package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extensions lists the file types Decode understands.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Fill stretches img to exactly w x h pixels, ignoring aspect ratio.
func Fill(img image.Image, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("scale image: invalid target size %dx%d", w, h)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("scale image: source is empty")
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst, nil
}

func Load(r io.Reader, w, h int) (*image.RGBA, error) {
	img, _, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Fill(img, w, h)
}
