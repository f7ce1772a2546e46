package keycheck

import "errors"

// ErrInvalidConstraints is returned when the constraints themselves are malformed,
// e.g. a negative length bound.
var ErrInvalidConstraints = errors.New("invalid constraints")
