package energy

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownView indicates a view name that is not summary, energy or hardware.
var ErrUnknownView = constError("unknown view")
