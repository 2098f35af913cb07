package tool

import (
	"fmt"
	"strings"

	"github.com/arcfs-org/arcfs/internal/errs"
)

var (
	Drivers             = make(map[string]Driver)
	MultipartExtensions = make(map[string]string)
)

func RegisterDriver(driver Driver) {
	for _, ext := range driver.AcceptedExtensions() {
		Drivers[ext] = driver
	}
	for _, ext := range driver.AcceptedMultipartExtensions() {
		first := fmt.Sprintf(ext, 1)
		MultipartExtensions[first] = ext
		Drivers[first] = driver
	}
}

func GetDriver(ext string) (string, Driver, error) {
	d, ok := Drivers[ext]
	if !ok {
		return "", nil, errs.UnknownArchiveFormat
	}
	partExt, ok := MultipartExtensions[ext]
	if !ok {
		return "", d, nil
	}
	return partExt, d, nil
}

// MatchExtension finds the longest registered extension that filename
// ends with, so multipart suffixes like ".7z.001" win over ".001".
func MatchExtension(filename string) (string, bool) {
	lower := strings.ToLower(filename)
	best := ""
	for ext := range Drivers {
		if strings.HasSuffix(lower, ext) && len(ext) > len(best) {
			best = ext
		}
	}
	return best, best != ""
}

// Extensions lists every registered extension.
func Extensions() []string {
	var ext []string
	for key := range Drivers {
		ext = append(ext, key)
	}
	return ext
}
