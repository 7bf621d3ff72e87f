package chat

import "errors"

var (
	// ErrNoContent indicates an engine build was attempted with no usable text.
	ErrNoContent = errors.New("no content to index")

	// ErrEmptyQuestion indicates a blank chat prompt.
	ErrEmptyQuestion = errors.New("empty question")
)
