package writer

import "errors"

var (
	// ErrInvalidInput indicates a request missing required fields.
	ErrInvalidInput = errors.New("invalid input")
	// ErrGenerationFailed indicates the language model could not draft the document.
	ErrGenerationFailed = errors.New("generation failed")
)
