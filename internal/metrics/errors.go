package metrics

import "errors"

// Sentinel errors for the metric aggregator. A propagated module error has
// no sentinel: the caller (internal/project) wraps whatever Analyse
// returned with the module's path as a prefix.
var (
	// ErrInvalidInput is returned when the ast or walker supplied to
	// Analyse is missing or malformed.
	ErrInvalidInput = errors.New("complexityscope: invalid input")

	// ErrZeroCyclomatic is returned when the maintainability index would
	// be computed against an average cyclomatic complexity of zero.
	ErrZeroCyclomatic = errors.New("complexityscope: zero average cyclomatic complexity")
)
