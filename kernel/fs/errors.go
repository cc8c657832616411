package fs

import "errors"

var (
	// ErrExist indicates a sibling with the same name already exists.
	ErrExist = errors.New("fs: file exists")

	// ErrNotExist indicates no entry with the given name exists in the working directory.
	ErrNotExist = errors.New("fs: no such file or directory")

	// ErrIsDir indicates a file operation was aimed at a directory.
	ErrIsDir = errors.New("fs: is a directory")

	// ErrNotDir indicates a directory operation was aimed at a file.
	ErrNotDir = errors.New("fs: not a directory")

	// ErrAtRoot indicates an attempt to move above the root.
	ErrAtRoot = errors.New("fs: already at root")

	// ErrInvalidName indicates a name that is not a single path component.
	ErrInvalidName = errors.New("fs: invalid name")
)
