package export

import (
	"CurveBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes the curve to a single page the size of the canvas, one PDF
// point per pixel. Degenerate segments are skipped as on screen.
func PDF(path string, c state.Curve, w, h int, title string) error {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	p.SetTitle(title, true)
	p.SetCreator("CurveBoard", true)
	p.AddPage()
	p.SetDrawColor(0, 0, 0)
	p.SetLineWidth(2)
	p.SetLineJoinStyle("round")
	p.SetLineCapStyle("round")

	for _, seg := range c {
		if len(seg) < 2 {
			continue
		}
		p.MoveTo(float64(seg[0].X), float64(seg[0].Y))
		for _, pt := range seg[1:] {
			p.LineTo(float64(pt.X), float64(pt.Y))
		}
		p.DrawPath("D")
	}
	return p.OutputFileAndClose(path)
}
