package request

import (
	"bytes"
	"errors"
)

// Size limits for the request line tokens.
const (
	MaxMethodLength = 15
	MaxPathLength   = 255
)

var (
	ErrMalformedRequestLine = errors.New("malformed request line")
	ErrMethodTooLong        = errors.New("method too long")
	ErrURITooLong           = errors.New("URI too long")
	ErrRequestLineTooLong   = errors.New("request line exceeds read buffer")
)

// isSpace matches the C locale whitespace set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// nextToken skips leading whitespace and returns the token that follows
// along with the offset just past it. An empty token means data ran out.
func nextToken(data []byte, off int) ([]byte, int) {
	for off < len(data) && isSpace(data[off]) {
		off++
	}
	start := off
	for off < len(data) && !isSpace(data[off]) {
		off++
	}
	return data[start:off], off
}

// parseRequestLine extracts the first two whitespace-delimited tokens.
// full reports that data filled the read buffer, so a token reaching the
// end of data may have been cut short.
// Returns: method, path, error
func parseRequestLine(data []byte, full bool) (string, string, error) {
	if i := bytes.IndexByte(data, 0); i != -1 {
		data = data[:i]
		full = false
	}

	method, off := nextToken(data, 0)
	if len(method) == 0 {
		return "", "", ErrMalformedRequestLine
	}
	if full && off == len(data) {
		return string(method), "", ErrRequestLineTooLong
	}
	if len(method) > MaxMethodLength {
		return string(method), "", ErrMethodTooLong
	}

	path, off := nextToken(data, off)
	if len(path) == 0 {
		return string(method), "", ErrMalformedRequestLine
	}
	if full && off == len(data) {
		return string(method), "", ErrRequestLineTooLong
	}
	if len(path) > MaxPathLength {
		return string(method), "", ErrURITooLong
	}

	return string(method), string(path), nil
}
