package json

import "errors"

var (
	errUnexpectedEOF      = errors.New("json: unexpected end of input")
	errUnexpectedChar     = errors.New("json: unexpected character")
	errExpectedCommaOrEnd = errors.New("json: expected ',' or closing bracket")
	errTooDeep            = errors.New("json: nesting exceeds maximum tree depth")
)
