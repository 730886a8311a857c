package collections

import "errors"

var (
	// ErrEmpty is returned by any operation that reads or removes from a
	// container holding zero logical elements.
	ErrEmpty = errors.New("collections: container is empty")

	// ErrFull is returned by a bounded append when the backing storage is
	// exhausted and the caller disabled automatic growth.
	ErrFull = errors.New("collections: container is full")
)
