package utils

import (
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// CreateThumb resizes a stored image to width pixels (height keeps the
// aspect ratio) and writes it next to the original as <name>_thumb<ext>.
func CreateThumb(filename, folder string, width int) (string, error) {
	src := filepath.Join(folder, filename)
	img, err := imaging.Open(src)
	if err != nil {
		return "", err
	}

	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	ext := filepath.Ext(filename)
	thumbName := strings.TrimSuffix(filename, ext) + "_thumb" + ext
	if err := imaging.Save(thumb, filepath.Join(folder, thumbName)); err != nil {
		return "", err
	}
	return thumbName, nil
}
