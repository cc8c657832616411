// Package proc keeps the table of simulated processes.
//
// The table assigns identifiers and remembers creation order. It does no
// memory accounting of its own: the kernel pairs every Create with an
// allocator reservation and every Terminate with a release.
package proc
