// Package static serves files from a fixed root directory.
package static

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Brownie44l1/minihttp/internal/request"
	"github.com/Brownie44l1/minihttp/internal/response"
)

const (
	Prefix = "/static/"

	msgFileNotFound = "File not found."
)

var ErrNotRegular = errors.New("not a regular file")

// Handler serves GET /static/<relative-path> from Root.
type Handler struct {
	Root string
}

func New(root string) *Handler {
	return &Handler{Root: root}
}

// ServeRequest sends the file named by the path suffix as
// application/octet-stream, or 404 when it cannot be served.
func (h *Handler) ServeRequest(w *response.Writer, req *request.Request) {
	name := strings.TrimPrefix(req.Path, Prefix)

	data, err := h.ReadFile(name)
	if err != nil {
		w.ErrorResponse(response.StatusNotFound, msgFileNotFound)
		return
	}

	w.BytesResponse(response.StatusOK, response.ContentTypeBinary, data)
}

// ReadFile reads the regular file name, relative to Root, fully into
// memory. Leading slashes are dropped, so "/a" names Root/a. Names that
// escape Root through ".." or symlinks are rejected.
func (h *Handler) ReadFile(name string) ([]byte, error) {
	name = strings.TrimLeft(name, "/")
	if name == "" {
		name = "."
	}

	root, err := os.OpenRoot(h.Root)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotRegular)
	}

	data := make([]byte, info.Size())
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
