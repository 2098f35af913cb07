package utils

import (
	"os"
)

// Exists reports whether the file or directory at path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
