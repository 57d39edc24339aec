package calc

import "errors"

// Evaluation errors. Callers surface all of them as the generic error display;
// the distinction exists for logging and for the HTTP/MCP surfaces.
var (
	ErrEmpty        = errors.New("empty expression")
	ErrSyntax       = errors.New("syntax error")
	ErrUnbalanced   = errors.New("unbalanced parentheses")
	ErrUnknownToken = errors.New("unknown token")
	ErrNotFinite    = errors.New("result is not a finite number")
	ErrTooLong      = errors.New("expression too long")
	ErrTooDeep      = errors.New("expression nested too deeply")
)
