package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
)

// maxAttempts bounds the search for a free artifact name.
const maxAttempts = 1 << 20

// ErrNoFreeName indicates that every candidate name up to maxAttempts exists.
var ErrNoFreeName = errors.New("render: no free file name")

// CreateUnique creates dir/<prefix><k><ext> for the smallest k ≥ 1 whose file
// does not exist yet. The file is opened with O_EXCL, so a name taken between
// the existence check and the create is skipped rather than overwritten.
func CreateUnique(dir, prefix, ext string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("render: create output directory: %w", err)
	}
	for k := 1; k <= maxAttempts; k++ {
		name := filepath.Join(dir, prefix+strconv.Itoa(k)+ext)
		f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("render: create %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s*%s in %s", ErrNoFreeName, prefix, ext, dir)
}

// SavePNG rasterizes p into a fresh dir/<prefix><k>.png of size×size
// pixels and returns its path. On an encoding error the partial file is
// removed so the name stays free.
func SavePNG(dir, prefix string, p *plot.Plot, size int) (string, error) {
	if size < MinSize {
		return "", ErrImageSize
	}
	f, err := CreateUnique(dir, prefix, ".png")
	if err != nil {
		return "", err
	}
	if err := WritePNG(f, p, size); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("render: close %s: %w", f.Name(), err)
	}

	return f.Name(), nil
}
