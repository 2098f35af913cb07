package vfs

import (
	"context"
	"io"
	"os"
	stdpath "path"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/arcfs-org/arcfs/internal/archive/tool"
	"github.com/arcfs-org/arcfs/internal/errs"
	"github.com/arcfs-org/arcfs/internal/model"
	"github.com/arcfs-org/arcfs/internal/scratch"
	"github.com/arcfs-org/arcfs/internal/stream"
)

// streamChunkSize is the forwarding granularity. Chunk boundaries carry
// no meaning for consumers.
const streamChunkSize = 64 * 1024

// streamBuffer bounds in-flight chunks between producer and consumer.
const streamBuffer = 8

// runBridge produces the contents of f onto fs: extract into a scratch
// directory, then forward the extracted bytes chunk by chunk, then emit
// the terminal event. The scratch directory is always cleaned up, even
// on failure; cleanup errors are swallowed by the provider.
func runBridge(c tool.Container, f *model.File, provider scratch.Provider, limiter *rate.Limiter, fs *stream.FileStream) {
	dir, cleanup, err := provider.Mkdir()
	if err != nil {
		fs.Fail(errors.Wrapf(errs.TempResource, "%v", err))
		return
	}
	defer cleanup()
	if err = extractFile(c, f, dir); err != nil {
		fs.Fail(err)
		return
	}
	src, err := os.Open(stdpath.Join(dir, f.Name))
	if err != nil {
		fs.Fail(errors.Wrapf(errs.UnderlyingIO, "open extracted file: %v", err))
		return
	}
	defer src.Close()
	forward(&stream.RateLimitReader{ReadCloser: src, Limiter: limiter, Ctx: context.Background()}, fs)
}

func forward(src io.Reader, fs *stream.FileStream) {
	buf := make([]byte, streamChunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if !fs.Push(chunk) {
				log.Debugf("stream consumer gone, stopping forward")
				return
			}
		}
		if err == io.EOF {
			fs.End()
			return
		}
		if err != nil {
			log.Debugf("stream forward aborted: %v", err)
			fs.Fail(errors.Wrapf(errs.UnderlyingIO, "%v", err))
			return
		}
	}
}
