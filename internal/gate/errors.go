package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingParameter is matched by every MissingParameterError.
var ErrMissingParameter = errors.New("missing parameter")

// MissingParameterError lists the form fields that were absent from a submission.
type MissingParameterError struct {
	Params []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingParameter, strings.Join(e.Params, ", "))
}

func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}
