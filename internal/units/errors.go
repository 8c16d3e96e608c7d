package units

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for unit normalization. Compare with errors.Is().
var (
	// ErrInvalidUnit indicates an unrecognized mass unit.
	ErrInvalidUnit = constError("invalid mass unit")

	// ErrNegativeValue indicates a negative mass value.
	ErrNegativeValue = constError("negative mass value")

	// ErrNonFinite indicates a NaN or infinite input, or an overflow during conversion.
	ErrNonFinite = constError("non-finite value")
)
