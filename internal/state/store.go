package state

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

const DefaultPath = "curve_points.json"

// FileStore keeps the curve in a single JSON file, overwritten on every save.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{Path: path}
}

func (fs *FileStore) Save(c Curve) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode curve: %w", err)
	}
	if err := os.WriteFile(fs.Path, data, 0o644); err != nil {
		return err
	}
	log.Printf("[STORE] wrote %d bytes to %s", len(data), fs.Path)
	return nil
}

func (fs *FileStore) Load() (Curve, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, err
	}
	var c Curve
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fs.Path, err)
	}
	return c, nil
}
