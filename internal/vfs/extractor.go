package vfs

import (
	"github.com/pkg/errors"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/model"
)

// awaitExtract runs one container extraction and blocks until its
// completion callback fires. The buffered channel is the future: the
// container may complete on any goroutine without blocking on us.
func awaitExtract(start func(done func(error))) error {
	errCh := make(chan error, 1)
	start(func(err error) {
		errCh <- err
	})
	if err := <-errCh; err != nil {
		return errors.Wrapf(errs.UnderlyingIO, "extract: %v", err)
	}
	return nil
}

func extractFile(c tool.Container, f *model.File, destDir string) error {
	return awaitExtract(func(done func(error)) {
		c.ExtractFile(f, destDir, done)
	})
}

func extractAll(c tool.Container, destDir string) error {
	return awaitExtract(func(done func(error)) {
		c.ExtractAll(destDir, done)
	})
}
