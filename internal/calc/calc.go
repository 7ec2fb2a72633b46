// Package calc evaluates the arithmetic encoded in /calc/<op>/<a>/<b> paths.
package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Operation names an arithmetic operation.
type Operation string

const (
	OpAdd Operation = "add"
	OpMul Operation = "mul"
	OpDiv Operation = "div"
)

const (
	Prefix = "/calc/"

	// MaxSegmentLength bounds each of the three path segments.
	MaxSegmentLength = 15
)

var (
	ErrInvalidFormat    = errors.New("invalid /calc request format")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrDivisionByZero   = errors.New("division by zero")
)

// Request holds the raw segments of a calc path.
type Request struct {
	Op string
	A  string
	B  string
}

// ParsePath splits a /calc/<op>/<a>/<b> path into its three segments. Each
// segment must be non-empty, at most MaxSegmentLength bytes and free of '/'.
func ParsePath(path string) (Request, error) {
	rest, ok := strings.CutPrefix(path, Prefix)
	if !ok {
		return Request{}, ErrInvalidFormat
	}

	parts := strings.SplitN(rest, "/", 3)
	if len(parts) != 3 {
		return Request{}, ErrInvalidFormat
	}
	for _, p := range parts {
		if p == "" || len(p) > MaxSegmentLength || strings.Contains(p, "/") {
			return Request{}, ErrInvalidFormat
		}
	}

	return Request{Op: parts[0], A: parts[1], B: parts[2]}, nil
}

// Evaluate applies op to a and b.
func Evaluate(op string, a, b float64) (float64, error) {
	switch Operation(op) {
	case OpAdd:
		return a + b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, ErrInvalidOperation
	}
}

// ParseOperand converts the longest leading decimal number in s, after any
// leading whitespace, and returns 0 when there is none. It never fails.
func ParseOperand(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	if v, ok := parseSpecial(s); ok {
		return v
	}

	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// ParseFloat already returned ±Inf or ±0
			return v
		}
		return 0
	}
	return v
}

// parseSpecial handles a signed "inf", "infinity" or "nan" prefix.
func parseSpecial(s string) (float64, bool) {
	sign := 1.0
	body := s
	if body != "" && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -1
		}
		body = body[1:]
	}

	lower := strings.ToLower(body)
	switch {
	case strings.HasPrefix(lower, "inf"):
		return math.Inf(int(sign)), true
	case strings.HasPrefix(lower, "nan"):
		return math.NaN(), true
	}
	return 0, false
}

// numericPrefix returns the longest prefix of s shaped like
// [sign] digits [. digits] [(e|E) [sign] digits], requiring at least one
// mantissa digit. An exponent without digits is left out.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return ""
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}
	return s[:end]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FormatResult renders v with two decimals, spelling infinities and NaN
// as inf, -inf and nan.
func FormatResult(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
