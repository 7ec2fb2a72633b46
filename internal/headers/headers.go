package headers

import "strings"

type field struct {
	name   string
	values []string
}

// Headers is an ordered set of response header fields. Lookup is
// case-insensitive; names are written back with the case they were first
// set with, in insertion order.
type Headers struct {
	fields []field
}

func NewHeaders() *Headers {
	return &Headers{}
}

func (h *Headers) index(key string) int {
	for i, f := range h.fields {
		if strings.EqualFold(f.name, key) {
			return i
		}
	}
	return -1
}

// Set replaces all values for a header, keeping its position
func (h *Headers) Set(key, value string) {
	if i := h.index(key); i != -1 {
		h.fields[i].values = []string{value}
		return
	}
	h.fields = append(h.fields, field{name: key, values: []string{value}})
}

// Each calls fn for every name/value pair in insertion order.
func (h *Headers) Each(fn func(name, value string)) {
	for _, f := range h.fields {
		for _, v := range f.values {
			fn(f.name, v)
		}
	}
}
