package refimage

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bordermap/internal/core/domain"
)

func writeImage(t *testing.T, name string, encode func(*os.File, image.Image) error) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 7))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestInspect_PNG(t *testing.T) {
	path := writeImage(t, "north.png", func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})

	info, err := New().Inspect(path)

	require.NoError(t, err)
	assert.Equal(t, domain.ImageInfo{Path: path, Format: "png", Width: 12, Height: 7}, info)
}

func TestInspect_JPEG(t *testing.T) {
	path := writeImage(t, "north.jpg", func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, nil)
	})

	info, err := New().Inspect(path)

	require.NoError(t, err)
	assert.Equal(t, "jpeg", info.Format)
	assert.Equal(t, 12, info.Width)
	assert.Equal(t, 7, info.Height)
}

func TestInspect_Missing(t *testing.T) {
	_, err := New().Inspect(filepath.Join(t.TempDir(), "missing.png"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInspect_Unsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, err := New().Inspect(path)

	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}
