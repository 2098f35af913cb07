package errs

import (
	"errors"
	"fmt"

	pkgerr "github.com/pkg/errors"
)

var (
	NotImplement = errors.New("not implement")
	NotSupport   = errors.New("not support")

	ObjectNotFound       = errors.New("object not found")
	UnderlyingIO         = errors.New("underlying io error")
	TempResource         = errors.New("temp resource unavailable")
	ArchiveClosed        = errors.New("archive closed")
	UnknownArchiveFormat = errors.New("unknown archive format")
	ArchiveCorrupted     = errors.New("archive corrupted")
)

// NotFoundIn wraps ObjectNotFound with the virtual path that failed to
// resolve, so callers can both match the sentinel and read the path.
func NotFoundIn(path string) error {
	return fmt.Errorf("%w: %s", ObjectNotFound, path)
}

func IsObjectNotFound(err error) bool {
	return errors.Is(pkgerr.Cause(err), ObjectNotFound)
}

func IsNotSupport(err error) bool {
	return errors.Is(pkgerr.Cause(err), NotSupport)
}

func IsArchiveClosed(err error) bool {
	return errors.Is(pkgerr.Cause(err), ArchiveClosed)
}
