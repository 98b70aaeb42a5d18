package location

import "errors"

// Errors returned by altitude-frame conversions and origin-relative queries.
// Operations that return one of these leave the receiver unchanged.
var (
	ErrNoHome            = errors.New("no home reference set")
	ErrNoOrigin          = errors.New("no origin reference set")
	ErrNoTerrainProvider = errors.New("no terrain provider set")
	ErrInvalidFrame      = errors.New("invalid altitude frame")
)
