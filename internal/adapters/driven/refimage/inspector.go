// Package refimage checks reference images before they are attached to a map.
//
// Only the image header is decoded. Recognised formats are JPEG, PNG, GIF,
// BMP, TIFF and WebP.
package refimage

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Inspector implements the interface.
var _ driven.ImageInspector = (*Inspector)(nil)

// Inspector decodes image headers from the filesystem.
type Inspector struct{}

// New creates an image inspector.
func New() *Inspector {
	return &Inspector{}
}

// Inspect reads the header of the image at path.
func (i *Inspector) Inspect(path string) (domain.ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ImageInfo{}, fmt.Errorf("image %s: %w", path, domain.ErrNotFound)
		}
		return domain.ImageInfo{}, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return domain.ImageInfo{}, fmt.Errorf("image %s: %w", path, domain.ErrUnsupportedType)
		}
		return domain.ImageInfo{}, fmt.Errorf("image %s: %v: %w", path, err, domain.ErrUnsupportedType)
	}

	return domain.ImageInfo{
		Path:   path,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
