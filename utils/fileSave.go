package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// SaveFile writes an uploaded file into folder under a fresh uuid name
// and returns the stored filename.
func SaveFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if err := EnsureDir(folder); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%s", GetUUID(), filepath.Ext(SanitizeFilename(header.Filename)))
	out, err := os.Create(filepath.Join(folder, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, file); err != nil {
		return "", err
	}

	return filename, nil
}
