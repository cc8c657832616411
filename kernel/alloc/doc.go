// Package alloc manages the simulated address space shared by processes.
//
// # Overview
//
// An allocator owns a fixed number of bytes and hands out contiguous regions
// keyed by process identifier. Every implementation keeps exact aggregate
// accounting: Used always equals the sum of the lengths of live regions, and
// Used + Free always equals Total.
//
// # Implementations
//
// BumpAllocator: compatible high-water allocator
//
//   - The granted offset is the current Used value
//   - Free only decrements Used; reclaimed ranges are not tracked
//   - A region freed below the top can be handed out again while a later
//     region still lives above it, so offsets may overlap
//
// BestFitAllocator: free-list allocator
//
//   - Free extents sorted by offset, coalesced with both neighbours on Free
//   - Smallest fitting extent wins, lowest offset on ties
//   - When the aggregate fits but no single extent does, live regions are
//     compacted toward offset 0 and the request is served from the tail
//   - Regions never overlap
//
// Both refuse a request exactly when Used + size > Total.
//
// # Usage Example
//
//	a := alloc.NewBump(1024)
//	off, err := a.Alloc(600, 1)
//	if errors.Is(err, alloc.ErrNoSpace) {
//	    // roll back the caller's bookkeeping
//	}
//	a.Free(1)
//
// # Thread Safety
//
// Allocators are not safe for concurrent use. The kernel package serializes
// access behind the System lock.
package alloc
