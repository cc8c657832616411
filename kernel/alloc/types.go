package alloc

import (
	"fmt"
	"strings"
)

// DefaultCapacity is the size of the address space when none is configured.
const DefaultCapacity = 1024

// Region is a contiguous range of the address space recorded against a pid.
type Region struct {
	Offset int
	Length int
}

// End returns the first offset past the region.
func (r Region) End() int { return r.Offset + r.Length }

// Info is a snapshot of aggregate occupancy.
type Info struct {
	Total int
	Used  int
	Free  int
}

// Allocator defines the interface for granting and reclaiming regions.
//
// Implementations:
//   - BumpAllocator: high-water offsets, aggregate accounting only
//   - BestFitAllocator: free-list with coalescing and compaction
type Allocator interface {
	// Alloc reserves size bytes for pid and returns the granted offset.
	// Returns ErrNoSpace when Used + size exceeds the capacity.
	Alloc(size, pid int) (int, error)

	// Free releases the region held by pid. Reports false if pid holds none.
	Free(pid int) bool

	// Info reports Total, Used and Free. It has no side effects.
	Info() Info

	// Region returns the region currently recorded for pid.
	Region(pid int) (Region, bool)

	// Policy names the allocation strategy.
	Policy() Policy
}

// Policy selects an allocation strategy.
type Policy string

const (
	PolicyBump    Policy = "bump"
	PolicyBestFit Policy = "best-fit"
)

// ParsePolicy resolves a policy name. Matching ignores case and accepts
// "bestfit" for best-fit.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(PolicyBump):
		return PolicyBump, nil
	case string(PolicyBestFit), "bestfit":
		return PolicyBestFit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// New returns an allocator of the given policy and capacity.
func New(p Policy, capacity int) (Allocator, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("alloc: capacity must be positive, got %d", capacity)
	}
	switch p {
	case PolicyBump, "":
		return NewBump(capacity), nil
	case PolicyBestFit:
		return NewBestFit(capacity), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, p)
}
