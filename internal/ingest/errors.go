package ingest

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidPrediction indicates a document that decodes as JSON but does
// not have the prediction shape.
var ErrInvalidPrediction = constError("invalid prediction")
