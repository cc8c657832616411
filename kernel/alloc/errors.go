package alloc

import "errors"

var (
	// ErrNoSpace indicates the request does not fit in the remaining capacity.
	ErrNoSpace = errors.New("alloc: not enough memory")

	// ErrBadSize indicates a zero or negative request size.
	ErrBadSize = errors.New("alloc: size must be positive")

	// ErrDuplicate indicates the pid already holds a region.
	ErrDuplicate = errors.New("alloc: pid already holds a region")

	// ErrUnknownPolicy indicates an unrecognised policy name.
	ErrUnknownPolicy = errors.New("alloc: unknown policy")
)
