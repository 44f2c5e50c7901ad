package cst

import (
	"errors"
	"fmt"

	"github.com/pycst/go-pycst/codegen"
)

// ErrValidation wraps every structural invariant violation detected at
// construction time. The wrapped message names the violated rule.
var ErrValidation = errors.New("validation error")

// ErrVisit wraps misuse of the ReplaceChildren visitor contract, such as
// removing a required child or substituting an incompatible node kind.
var ErrVisit = errors.New("visit error")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func visitf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrVisit, fmt.Sprintf(format, args...))
}

func codegenf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", codegen.ErrCodegen, fmt.Sprintf(format, args...))
}
