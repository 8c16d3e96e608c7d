package history

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrInvalidPath indicates an empty database path.
	ErrInvalidPath = constError("invalid history database path")

	// ErrSchemaMismatch indicates a database created by another schema version.
	ErrSchemaMismatch = constError("history schema mismatch")

	// ErrTransactionFailed indicates a failed write.
	ErrTransactionFailed = constError("history transaction failed")
)
