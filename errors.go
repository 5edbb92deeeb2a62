package vector

import "github.com/pkg/errors"

var (
	// ErrAllocation is returned when backing storage for the requested
	// number of elements cannot be obtained.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrOutOfRange is returned by checked accessors when the index is not
	// below the logical size.
	ErrOutOfRange = errors.New("vector: index out of range")
)
