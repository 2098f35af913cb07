package stream

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileStreamEvents(t *testing.T) {
	fs := NewFileStream(4)
	go func() {
		fs.Push([]byte("ab"))
		fs.Push([]byte("cd"))
		fs.End()
	}()
	var got []byte
	var terminal EventType
	for ev := range fs.Events() {
		if ev.Type == EventData {
			got = append(got, ev.Data...)
		} else {
			terminal = ev.Type
		}
	}
	require.Equal(t, []byte("abcd"), got)
	require.Equal(t, EventEnd, terminal)
}

func TestFileStreamFailTerminates(t *testing.T) {
	fs := NewFileStream(1)
	boom := errors.New("boom")
	fs.Fail(boom)
	// Pushes after the terminal event are dropped.
	fs.Push([]byte("late"))
	fs.End()

	ev, ok := <-fs.Events()
	require.True(t, ok)
	require.Equal(t, EventError, ev.Type)
	require.ErrorIs(t, ev.Err, boom)
	_, ok = <-fs.Events()
	require.False(t, ok)
}

func TestFileStreamCloseReleasesProducer(t *testing.T) {
	fs := NewFileStream(1)
	require.True(t, fs.Push([]byte("a")))

	blocked := make(chan bool, 1)
	go func() {
		// Buffer is full, so this send only returns once the consumer
		// closes the stream.
		blocked <- fs.Push([]byte("b"))
	}()

	require.NoError(t, fs.Close())
	select {
	case delivered := <-blocked:
		require.False(t, delivered)
	case <-time.After(2 * time.Second):
		t.Fatal("producer still blocked after Close")
	}

	// Later pushes and the terminal event return immediately.
	require.False(t, fs.Push([]byte("c")))
	fs.End()
	require.NoError(t, fs.Close())
}

func TestFileStreamReader(t *testing.T) {
	fs := NewFileStream(2)
	go func() {
		fs.Push([]byte("hello "))
		fs.Push([]byte("world"))
		fs.End()
	}()
	got, err := io.ReadAll(fs)
	require.NoError(t, err)
	require.Equal(t, "hello world", string(got))
}

func TestFileStreamReaderError(t *testing.T) {
	fs := NewFileStream(2)
	boom := errors.New("boom")
	go func() {
		fs.Push([]byte("partial"))
		fs.Fail(boom)
	}()
	_, err := io.ReadAll(fs)
	require.ErrorIs(t, err, boom)
}

func TestFileStreamSmallReads(t *testing.T) {
	fs := NewFileStream(1)
	go func() {
		fs.Push([]byte("abcdef"))
		fs.End()
	}()
	buf := make([]byte, 4)
	n, err := fs.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "abcd", string(buf[:n]))
	n, err = fs.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "ef", string(buf[:n]))
	_, err = fs.Read(buf)
	require.Equal(t, io.EOF, err)
}
