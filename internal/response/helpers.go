package response

import (
	"strconv"

	"github.com/Brownie44l1/minihttp/internal/headers"
)

// MaxTextResponseSize bounds a fully serialized text/plain response.
const MaxTextResponseSize = 1024

const (
	ContentTypeText   = "text/plain"
	ContentTypeBinary = "application/octet-stream"
)

// TextResponse writes a text/plain response. The serialized response must
// fit in MaxTextResponseSize bytes.
func (w *Writer) TextResponse(code StatusCode, body string) error {
	if size := framedSize(code, ContentTypeText, len(body)); size > MaxTextResponseSize {
		return w.fail(ErrResponseTooLarge)
	}
	return w.BytesResponse(code, ContentTypeText, []byte(body))
}

// ErrorResponse writes message verbatim as a text response
func (w *Writer) ErrorResponse(code StatusCode, message string) error {
	if message == "" {
		message = StatusText(code)
	}
	return w.TextResponse(code, message)
}

// BytesResponse writes a response with arbitrary byte content.
// Content-Length is the exact byte length of data.
func (w *Writer) BytesResponse(code StatusCode, contentType string, data []byte) error {
	if err := w.WriteStatusLine(code); err != nil {
		return err
	}

	h := headers.NewHeaders()
	h.Set("Content-Type", contentType)
	h.Set("Content-Length", strconv.Itoa(len(data)))

	if err := w.WriteHeaders(h); err != nil {
		return err
	}

	return w.WriteBody(data)
}

// framedSize is the length of the status line, both headers, the blank line
// and a body of bodyLen bytes.
func framedSize(code StatusCode, contentType string, bodyLen int) int {
	n := len("HTTP/1.1 ") + len(strconv.Itoa(int(code))) + 1 + len(StatusText(code)) + 2
	n += len("Content-Type: ") + len(contentType) + 2
	n += len("Content-Length: ") + len(strconv.Itoa(bodyLen)) + 2
	n += 2
	return n + bodyLen
}
