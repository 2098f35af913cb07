package stream

import (
	"io"
	"sync"
)

// EventType discriminates the events a FileStream can emit.
type EventType int

const (
	EventData EventType = iota
	EventEnd
	EventError
)

// Event is one item on a FileStream: a data chunk, a terminal end marker,
// or a terminal error. Data is only set for EventData, Err for EventError.
type Event struct {
	Type EventType
	Data []byte
	Err  error
}

// FileStream is the consumer handle returned synchronously while a
// producer fills it in the background. The producer pushes zero or more
// data events followed by exactly one end or error event; the channel is
// bounded, so an unread consumer blocks the producer (backpressure).
// A consumer that stops reading must Close the stream so the producer
// can finish and release its resources.
type FileStream struct {
	events chan Event
	done   chan struct{}

	closeOnce sync.Once

	mu       sync.Mutex
	finished bool

	// leftover holds the unread tail of the last data event for the
	// io.Reader adapter.
	leftover []byte
	readErr  error
}

// NewFileStream returns a stream whose event channel holds up to buffer
// pending events. Buffer must be at least 1 so the terminal event of an
// abandoned stream never wedges its producer forever on a failed resolve.
func NewFileStream(buffer int) *FileStream {
	if buffer < 1 {
		buffer = 1
	}
	return &FileStream{
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
}

// Events exposes the raw event channel. It is closed after the terminal
// event has been delivered.
func (s *FileStream) Events() <-chan Event {
	return s.events
}

// Close abandons the stream from the consumer side: undelivered events
// are dropped and a producer blocked on backpressure is released. Close
// never blocks and is safe to call repeatedly or after the stream ended.
func (s *FileStream) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	return nil
}

// Push delivers one data chunk, blocking until the consumer has room.
// It reports whether the chunk was delivered; false means the consumer
// closed the stream and the producer should stop forwarding. Push after
// the terminal event is a no-op.
func (s *FileStream) Push(chunk []byte) bool {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return false
	}
	s.mu.Unlock()
	select {
	case s.events <- Event{Type: EventData, Data: chunk}:
		return true
	case <-s.done:
		return false
	}
}

// End delivers the terminal end event and closes the channel.
func (s *FileStream) End() {
	s.finish(Event{Type: EventEnd})
}

// Fail delivers the terminal error event and closes the channel.
func (s *FileStream) Fail(err error) {
	s.finish(Event{Type: EventError, Err: err})
}

func (s *FileStream) finish(ev Event) {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return
	}
	s.finished = true
	s.mu.Unlock()
	select {
	case s.events <- ev:
	case <-s.done:
	}
	close(s.events)
}

// Read adapts the event stream to io.Reader: data events become bytes,
// the end event becomes io.EOF, an error event becomes that error.
func (s *FileStream) Read(p []byte) (int, error) {
	if len(s.leftover) > 0 {
		n := copy(p, s.leftover)
		s.leftover = s.leftover[n:]
		return n, nil
	}
	if s.readErr != nil {
		return 0, s.readErr
	}
	ev, ok := <-s.events
	if !ok {
		return 0, io.EOF
	}
	switch ev.Type {
	case EventData:
		n := copy(p, ev.Data)
		s.leftover = ev.Data[n:]
		return n, nil
	case EventError:
		s.readErr = ev.Err
		return 0, ev.Err
	default:
		s.readErr = io.EOF
		return 0, io.EOF
	}
}

var _ io.ReadCloser = (*FileStream)(nil)
