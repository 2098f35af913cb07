package stream

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// DownloadLimit and UploadLimit throttle bytes leaving and entering the
// process. nil means unthrottled.
var (
	DownloadLimit *rate.Limiter
	UploadLimit   *rate.Limiter
)

type RateLimitReader struct {
	io.ReadCloser
	Limiter *rate.Limiter
	Ctx     context.Context
}

func (r *RateLimitReader) Read(p []byte) (n int, err error) {
	n, err = r.ReadCloser.Read(p)
	if err != nil {
		return
	}
	if r.Limiter != nil {
		if r.Ctx == nil {
			r.Ctx = context.Background()
		}
		err = r.Limiter.WaitN(r.Ctx, n)
	}
	return
}

type NopCloserWriter struct {
	io.Writer
}

func (NopCloserWriter) Close() error { return nil }

type RateLimitWriter struct {
	io.WriteCloser
	Limiter *rate.Limiter
	Ctx     context.Context
}

func (w *RateLimitWriter) Write(p []byte) (n int, err error) {
	n, err = w.WriteCloser.Write(p)
	if err != nil {
		return
	}
	if w.Limiter != nil {
		if w.Ctx == nil {
			w.Ctx = context.Background()
		}
		err = w.Limiter.WaitN(w.Ctx, n)
	}
	return
}
