package response

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Brownie44l1/minihttp/internal/headers"
)

var ErrResponseTooLarge = errors.New("response exceeds serialization buffer")

// writerState tracks what's been written so far
type writerState int

const (
	stateStart writerState = iota
	stateStatusWritten
	stateHeadersWritten
	stateBodyWritten
)

// Writer assembles one HTTP response in memory and sends it to the
// underlying io.Writer in a single Write once the body is written.
// A short write is reported, not retried. The first error is kept for Err.
type Writer struct {
	w          io.Writer
	buf        bytes.Buffer
	state      writerState
	statusCode StatusCode
	err        error
}

// NewWriter creates a new response writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:     w,
		state: stateStart,
	}
}

// WriteStatusLine buffers the HTTP status line
func (w *Writer) WriteStatusLine(code StatusCode) error {
	if w.state != stateStart {
		return w.fail(fmt.Errorf("status line already written"))
	}

	fmt.Fprintf(&w.buf, "HTTP/1.1 %d %s\r\n", code, StatusText(code))

	w.statusCode = code
	w.state = stateStatusWritten
	return nil
}

// WriteHeaders buffers all header fields followed by the blank line
func (w *Writer) WriteHeaders(h *headers.Headers) error {
	if w.state != stateStatusWritten {
		return w.fail(fmt.Errorf("must write status line before headers"))
	}

	h.Each(func(name, value string) {
		fmt.Fprintf(&w.buf, "%s: %s\r\n", name, value)
	})
	w.buf.WriteString("\r\n")

	w.state = stateHeadersWritten
	return nil
}

// WriteBody appends the complete body and sends the whole response
func (w *Writer) WriteBody(data []byte) error {
	if w.state != stateHeadersWritten {
		return w.fail(fmt.Errorf("must write headers before body"))
	}

	w.buf.Write(data)
	w.state = stateBodyWritten

	out := w.buf.Bytes()
	n, err := w.w.Write(out)
	w.buf.Reset()
	if err != nil {
		return w.fail(err)
	}
	if n < len(out) {
		return w.fail(io.ErrShortWrite)
	}
	return nil
}

func (w *Writer) fail(err error) error {
	if w.err == nil {
		w.err = err
	}
	return err
}

// Err returns the first error the writer hit, if any
func (w *Writer) Err() error {
	return w.err
}

// Written reports whether a complete response has been sent
func (w *Writer) Written() bool {
	return w.state == stateBodyWritten
}

// Started reports whether any part of the response has been buffered
func (w *Writer) Started() bool {
	return w.state != stateStart
}

func (w *Writer) StatusCode() StatusCode {
	return w.statusCode
}
