package request

import (
	"fmt"
	"io"
)

// MaxRequestSize is the size of the single read taken from a connection.
// Request lines longer than this, or split across several TCP segments,
// are not guaranteed to parse.
const MaxRequestSize = 1024

// Request is the method and path taken from the start of a request.
// Anything after the path (version, headers, body) is ignored.
type Request struct {
	Method string
	Path   string
}

// Parse tokenizes the method and path from data. It always returns a
// non-nil Request; on error Path is empty, so routing treats the request
// as an unknown resource.
func Parse(data []byte) (*Request, error) {
	full := len(data) >= MaxRequestSize
	if full {
		data = data[:MaxRequestSize]
	}

	method, path, err := parseRequestLine(data, full)
	req := &Request{Method: method, Path: path}
	if err != nil {
		return req, fmt.Errorf("parse request line: %w", err)
	}
	return req, nil
}

// RequestFromReader takes exactly one Read of up to MaxRequestSize bytes
// from reader and parses whatever arrived. A read error is not fatal: the
// bytes read before it, possibly none, are still parsed.
func RequestFromReader(reader io.Reader) (*Request, error) {
	buf := make([]byte, MaxRequestSize)
	n, _ := reader.Read(buf)
	return Parse(buf[:n])
}
