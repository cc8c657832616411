package kernel

import (
	"fmt"
	"sync"

	"github.com/joshuapare/ohios/internal/logger"
	"github.com/joshuapare/ohios/kernel/alloc"
	"github.com/joshuapare/ohios/kernel/fs"
	"github.com/joshuapare/ohios/kernel/proc"
)

// Options configures a System.
type Options struct {
	// Capacity is the size of the address space. Default: alloc.DefaultCapacity
	Capacity int

	// Policy selects the allocator. Default: alloc.PolicyBump
	Policy alloc.Policy
}

// System is the root context shared by every front end.
type System struct {
	mu sync.Mutex

	mem   alloc.Allocator
	procs *proc.Table
	tree  *fs.Tree
}

// New builds a System with an empty table and a tree holding only "/".
func New(opts Options) (*System, error) {
	if opts.Capacity == 0 {
		opts.Capacity = alloc.DefaultCapacity
	}
	mem, err := alloc.New(opts.Policy, opts.Capacity)
	if err != nil {
		return nil, err
	}
	return NewWith(mem), nil
}

// NewWith builds a System around an existing allocator.
func NewWith(mem alloc.Allocator) *System {
	return &System{
		mem:   mem,
		procs: proc.NewTable(),
		tree:  fs.NewTree(),
	}
}

// Lock acquires the kernel lock. Hold it across a whole command.
func (s *System) Lock() { s.mu.Lock() }

// Unlock releases the kernel lock.
func (s *System) Unlock() { s.mu.Unlock() }

// Memory returns the allocator.
func (s *System) Memory() alloc.Allocator { return s.mem }

// Processes returns the process table.
func (s *System) Processes() *proc.Table { return s.procs }

// FS returns the file tree.
func (s *System) FS() *fs.Tree { return s.tree }

// Spawn creates a process and reserves size bytes for it. If the reservation
// fails the new entry is removed again and the error wraps ErrNoMemory.
// The pid consumed by a failed Spawn is not reused.
func (s *System) Spawn(name string, size int) (*proc.Process, error) {
	p := s.procs.Create(name, size)

	off, err := s.mem.Alloc(size, p.PID)
	if err != nil {
		s.procs.Terminate(p.PID)
		logger.Debug("spawn rolled back", "pid", p.PID, "name", name, "size", size, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrNoMemory, err)
	}

	s.procs.SetOffset(p.PID, off)
	s.syncOffsets()

	logger.Debug("spawned", "pid", p.PID, "name", name, "size", size, "offset", off)
	return p, nil
}

// Kill frees the memory of pid and removes it from the table. Success
// requires both steps to succeed.
func (s *System) Kill(pid int) (*proc.Process, error) {
	freed := s.mem.Free(pid)
	p, removed := s.procs.Terminate(pid)
	if !freed || !removed {
		logger.Debug("kill failed", "pid", pid, "freed", freed, "removed", removed)
		return nil, fmt.Errorf("%w: %d", ErrNoProcess, pid)
	}

	logger.Debug("killed", "pid", pid, "name", p.Name)
	return p, nil
}

// syncOffsets refreshes cached offsets after an allocator that may relocate
// regions has run.
func (s *System) syncOffsets() {
	if s.mem.Policy() != alloc.PolicyBestFit {
		return
	}
	for _, p := range s.procs.List() {
		if r, ok := s.mem.Region(p.PID); ok {
			s.procs.SetOffset(p.PID, r.Offset)
		}
	}
}
