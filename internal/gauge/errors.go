package gauge

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidSpec indicates a gauge spec with a non-positive or non-finite
// domain, or a non-finite tick.
var ErrInvalidSpec = constError("invalid gauge spec")
