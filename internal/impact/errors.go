package impact

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnorderedThresholds indicates a threshold table that is not
	// strictly ascending or contains non-finite bounds.
	ErrUnorderedThresholds = constError("thresholds must be finite and strictly ascending")

	// ErrEmptyTable indicates a classifier built without thresholds.
	ErrEmptyTable = constError("threshold table is empty")
)
