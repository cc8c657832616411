// Package kernel ties the allocator, the process table and the file tree
// into one root context.
//
// # Overview
//
// A System owns exactly one of each component. Process lifecycle always
// touches two of them, so it is only exposed in coupled form:
//
//   - Spawn: create a table entry, reserve memory, roll the entry back if the
//     reservation fails
//   - Kill: release memory and remove the entry; both must succeed
//
// Filesystem operations go straight to FS().
//
// # Thread Safety
//
// None of the components is safe for concurrent mutation. Front ends that
// share a System across goroutines must hold Lock for the duration of each
// command; the shell dispatcher does this for every Execute call.
package kernel
