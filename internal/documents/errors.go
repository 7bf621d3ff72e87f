package documents

import "errors"

var (
	// ErrInvalidInput indicates a malformed or empty upload.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedType indicates a file type the pipeline cannot process.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrAnalysisFailed indicates the language model could not analyze the document.
	ErrAnalysisFailed = errors.New("analysis failed")
)
