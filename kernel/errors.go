package kernel

import "errors"

var (
	// ErrNoMemory indicates Spawn could not reserve the requested size.
	ErrNoMemory = errors.New("kernel: not enough memory")

	// ErrNoProcess indicates Kill found no live process with that pid.
	ErrNoProcess = errors.New("kernel: process not found")
)
