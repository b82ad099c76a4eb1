package prover

import (
	"github.com/pkg/errors"
)

var (
	// ErrConfiguration is returned when a configuration cannot hold the
	// requested circuit. It is always raised before compilation.
	ErrConfiguration = errors.New("prover: configuration error")
	// ErrInconsistentTrace is returned when the replayed native computation
	// does not satisfy the circuit.
	ErrInconsistentTrace = errors.New("prover: inconsistent trace")
	// ErrProver is returned when the backend rejects a witness.
	ErrProver = errors.New("prover: proving failed")
	// ErrVerification is returned when a proof does not verify.
	ErrVerification = errors.New("prover: verification failed")
	// ErrResourceExhausted is returned when a circuit exceeds its constraint
	// budget.
	ErrResourceExhausted = errors.New("prover: resource exhausted")
	// ErrInvalidTransition is returned when a session step is run out of
	// order or twice.
	ErrInvalidTransition = errors.New("prover: invalid session transition")
)

// stageError ties a failure to its kind so that errors.Is matches both the
// sentinel and the underlying cause.
type stageError struct {
	kind  error
	cause error
}

func (e *stageError) Error() string   { return e.kind.Error() + ": " + e.cause.Error() }
func (e *stageError) Unwrap() []error { return []error{e.kind, e.cause} }

func fail(kind, cause error, msg string) error {
	return &stageError{kind: kind, cause: errors.Wrap(cause, msg)}
}

func failf(kind error, format string, args ...any) error {
	return &stageError{kind: kind, cause: errors.Errorf(format, args...)}
}
