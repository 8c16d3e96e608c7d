package chart

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidInput indicates a malformed series: mismatched lengths or
	// non-finite timestamps.
	ErrInvalidInput = constError("invalid series input")

	// ErrUnknownPolicy indicates an unrecognized axis policy.
	ErrUnknownPolicy = constError("unknown axis policy")
)
