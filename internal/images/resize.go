// Package images holds the avatar downscale step. It runs as an explicit
// call after the write that stores the blob has committed, never inside a
// generic save path.
package images

import (
	"github.com/disintegration/imaging"
)

// MaxAvatarDim is the largest dimension an avatar keeps after upload.
const MaxAvatarDim = 300

// FitWithin downscales the image at path so neither dimension exceeds max,
// preserving aspect ratio, and overwrites the file in place. Images already
// within bounds are left untouched. Returns the final dimensions.
func FitWithin(path string, max int) (width, height int, err error) {
	img, err := imaging.Open(path)
	if err != nil {
		return 0, 0, err
	}

	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width <= max && height <= max {
		return width, height, nil
	}

	resized := imaging.Fit(img, max, max, imaging.Lanczos)
	if err := imaging.Save(resized, path); err != nil {
		return 0, 0, err
	}

	nb := resized.Bounds()
	return nb.Dx(), nb.Dy(), nil
}
