package export

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Extension is appended to saved files that do not already end with it.
const Extension = ".png"

// Encoder writes an image in the export format.
type Encoder interface {
	EncodePNG(w io.Writer) error
}

// NormalizePath appends Extension unless path already ends with it. The check
// is an exact suffix match, so "a.jpg" becomes "a.jpg.png".
func NormalizePath(path string) string {
	if strings.HasSuffix(path, Extension) {
		return path
	}
	return path + Extension
}

// WritePNG encodes img into the file at path, after normalizing the path.
// It returns the path actually written.
func WritePNG(path string, img Encoder) (string, error) {
	path = NormalizePath(path)
	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create %s: %w", path, err)
	}
	if err := img.EncodePNG(f); err != nil {
		f.Close()
		return path, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
