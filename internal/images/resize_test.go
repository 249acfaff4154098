package images

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{R: 120, G: 60, B: 200, A: 255})
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, imaging.Save(img, path))
	return path
}

func openBounds(t *testing.T, path string) image.Rectangle {
	t.Helper()

	img, err := imaging.Open(path)
	require.NoError(t, err)
	return img.Bounds()
}

func TestFitWithinDownscalesLargeImage(t *testing.T) {
	path := writeTestImage(t, 600, 400)

	w, h, err := FitWithin(path, MaxAvatarDim)
	require.NoError(t, err)

	// aspect ratio 3:2 preserved, neither dimension above 300
	assert.Equal(t, 300, w)
	assert.Equal(t, 200, h)

	b := openBounds(t, path)
	assert.Equal(t, 300, b.Dx())
	assert.Equal(t, 200, b.Dy())
}

func TestFitWithinTallImage(t *testing.T) {
	path := writeTestImage(t, 400, 600)

	w, h, err := FitWithin(path, MaxAvatarDim)
	require.NoError(t, err)

	assert.Equal(t, 200, w)
	assert.Equal(t, 300, h)
}

func TestFitWithinLeavesSmallImageAlone(t *testing.T) {
	path := writeTestImage(t, 200, 150)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	w, h, err := FitWithin(path, MaxAvatarDim)
	require.NoError(t, err)
	assert.Equal(t, 200, w)
	assert.Equal(t, 150, h)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "in-bounds image must not be rewritten")
}

func TestFitWithinRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, _, err := FitWithin(path, MaxAvatarDim)
	assert.Error(t, err)
}
