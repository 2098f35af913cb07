package vfs

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
)

// OpenOptions control the factory: Create makes a new empty container,
// otherwise an existing one is loaded; Verify asks the backend for an
// integrity pass while loading.
type OpenOptions struct {
	Create bool
	Verify bool
}

// Open picks the driver registered for filename's extension and returns
// a handler over the loaded or created container.
func Open(filename string, opts OpenOptions, hopts ...Option) (*Handler, error) {
	ext, ok := tool.MatchExtension(filename)
	if !ok {
		return nil, errors.Wrapf(errs.UnknownArchiveFormat, "%s", filename)
	}
	_, driver, err := tool.GetDriver(ext)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var c tool.Container
	if opts.Create {
		c, err = driver.Create(filename)
	} else {
		c, err = driver.Load(filename, opts.Verify)
	}
	if err != nil {
		return nil, err
	}
	log.Debugf("opened %s with driver for %s (create=%v verify=%v)", filename, ext, opts.Create, opts.Verify)
	return NewHandler(c, hopts...), nil
}
