package diag

import "fmt"

// buildError is an error caused by a grammar failing to build into a table.
// It carries both a short operator-facing message and a more technical
// Error() string, adapted from the teacher's internal/tqerrors
// interpreterError so that cmd/bnflr and cmd/bnflrd can show a concise line
// on stderr/in an HTTP body while still logging (or wrapping) the fuller
// detail when needed.
type buildError struct {
	msg      string
	operator string
	wrap     error
}

func (e *buildError) Error() string {
	return e.msg
}

// OperatorMessage is the short message to show whoever is running bnflr or
// bnflrd, as distinct from the more technical Error() string.
func (e *buildError) OperatorMessage() string {
	return e.operator
}

func (e *buildError) Unwrap() error {
	return e.wrap
}

// NewBuildError returns an error with a short operator-facing message and a
// separate technical description. If technical is empty, one is generated
// from operator.
func NewBuildError(operator, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("build failed: %s", operator)
	}
	return &buildError{msg: technical, operator: operator}
}

// WrapBuildError is like NewBuildError but also records the error it wraps,
// retrievable via errors.Unwrap.
func WrapBuildError(wrapped error, operator, technical string) error {
	if technical == "" {
		technical = fmt.Sprintf("build failed: %s", operator)
	}
	return &buildError{msg: technical, operator: operator, wrap: wrapped}
}

// OperatorMessage gets the message to show the operator for err. If err is
// not one produced by NewBuildError/WrapBuildError, err.Error() is returned
// instead.
func OperatorMessage(err error) string {
	if be, ok := err.(*buildError); ok {
		return be.OperatorMessage()
	}
	return err.Error()
}
