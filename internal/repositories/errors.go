package repositories

import "errors"

// ErrNotFound is returned when a referenced document does not exist. Callers
// test with errors.Is; handlers map it to 404.
var ErrNotFound = errors.New("not found")
