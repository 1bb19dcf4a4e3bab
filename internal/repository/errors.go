package repository

import "errors"

// ErrNotFound signals an absent row. Repositories wrap it with the entity
// name; callers test with errors.Is.
var ErrNotFound = errors.New("not found")
