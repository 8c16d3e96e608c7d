package config

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = constError("invalid configuration")
