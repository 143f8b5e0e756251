package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const editedSuffix = "-edited"

// PrepareOutputFilename derives the output name by splitting on "." and
// inserting "-edited" before the first extension. Only the first two
// segments survive, so "a.b.jpg" becomes "a-edited.b".
func PrepareOutputFilename(inputFile string) string {
	parts := strings.Split(inputFile, ".")
	if len(parts) == 1 {
		return parts[0] + editedSuffix
	}
	return fmt.Sprintf("%s%s.%s", parts[0], editedSuffix, parts[1])
}

// IsSupportedImage checks if the filename has an image extension we can decode
func IsSupportedImage(filename string) bool {
	validExts := []string{
		".jpg",
		".jpeg",
		".png",
		".gif",
		".webp",
		".bmp",
		".tif",
		".tiff",
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, validExt := range validExts {
		if ext == validExt {
			return true
		}
	}
	return false
}

// TempFilename generates a hidden sibling name used while a file is being written
func TempFilename(filename string) string {
	dir, base := filepath.Split(filename)
	id := uuid.New().String()[:8]

	return filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, id))
}

func IsTempFilename(filename string) bool {
	base := filepath.Base(filename)
	return strings.HasPrefix(base, ".") && strings.HasSuffix(base, ".tmp")
}
