// Package fs implements the simulator's in-memory hierarchical filesystem.
//
// # Overview
//
// A Tree owns a single root directory named "/". Every operation is scoped to
// the current working directory, which the tree tracks through a navigation
// stack: the first entry is always the root and the last is always the
// working directory.
//
// # Nodes
//
// Node is a tagged variant with two concrete types:
//
//   - *File: a name and a byte content; Size is len(content)
//   - *Dir: a name and children in insertion order, unique by name
//
// Each directory exclusively owns its children. Deleting a directory drops
// its entire subtree.
//
// # Names
//
// Entry names are single path components. The empty string, ".", ".." and
// anything containing "/" are rejected by CreateFile and Mkdir.
//
// # Thread Safety
//
// A Tree is not safe for concurrent use.
package fs
