package calc

import (
	"errors"

	"github.com/Brownie44l1/minihttp/internal/request"
	"github.com/Brownie44l1/minihttp/internal/response"
)

// Response bodies
const (
	msgInvalidFormat    = "Invalid /calc request format."
	msgInvalidOperation = "Invalid operation."
	msgDivisionByZero   = "Division by zero."
)

// ServeRequest answers GET /calc/<op>/<a>/<b> with "Result: <value>\n".
// Operands that do not parse count as zero.
func ServeRequest(w *response.Writer, req *request.Request) {
	cr, err := ParsePath(req.Path)
	if err != nil {
		w.ErrorResponse(response.StatusBadRequest, msgInvalidFormat)
		return
	}

	result, err := Evaluate(cr.Op, ParseOperand(cr.A), ParseOperand(cr.B))
	switch {
	case errors.Is(err, ErrDivisionByZero):
		w.ErrorResponse(response.StatusBadRequest, msgDivisionByZero)
		return
	case err != nil:
		w.ErrorResponse(response.StatusBadRequest, msgInvalidOperation)
		return
	}

	w.TextResponse(response.StatusOK, "Result: "+FormatResult(result)+"\n")
}
