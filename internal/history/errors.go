package history

import "errors"

// ErrNotFound indicates no ledger entry exists for a name.
var ErrNotFound = errors.New("not found")
