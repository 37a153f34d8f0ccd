// Package loader handles program image loading operations.
package loader

import (
	"fmt"
	"io"
	"os"
)

// Loader handles loading program images from disk.
type Loader struct{}

// New creates a new program image loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete program image file. The image is raw binary
// without any header.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}

	image, err := l.LoadFromReader(file)
	if closeErr := file.Close(); closeErr != nil && err == nil {
		return nil, fmt.Errorf("closing file %s: %w", path, closeErr)
	}
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return image, nil
}

// LoadFromReader reads a program image from a reader.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	image, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading program image: %w", err)
	}
	if len(image) == 0 {
		return nil, errEmptyImage
	}
	return image, nil
}
