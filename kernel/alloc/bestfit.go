package alloc

import (
	"cmp"
	"slices"
)

// BestFitAllocator tracks free extents explicitly so that live regions never
// overlap.
//
// Key characteristics:
//   - Free extents are kept sorted by offset
//   - Alloc picks the smallest extent that fits; ties go to the lowest offset
//   - Free coalesces the released range with adjacent free extents
//   - If Used + size fits but no extent is large enough, live regions are
//     slid toward offset 0 in offset order and the request is served from the
//     single free extent that remains at the top
//
// Compaction changes the offsets of live regions. Callers that cache offsets
// must re-read them with Region after an Alloc.
type BestFitAllocator struct {
	capacity int
	used     int
	regions  map[int]Region

	// free holds disjoint, non-adjacent extents sorted by Offset.
	free []Region

	compactions int
}

// NewBestFit creates a BestFitAllocator over capacity bytes.
func NewBestFit(capacity int) *BestFitAllocator {
	return &BestFitAllocator{
		capacity: capacity,
		regions:  make(map[int]Region),
		free:     []Region{{Offset: 0, Length: capacity}},
	}
}

// Alloc grants size bytes from the best fitting free extent.
func (fa *BestFitAllocator) Alloc(size, pid int) (int, error) {
	if size <= 0 {
		return 0, ErrBadSize
	}
	if _, ok := fa.regions[pid]; ok {
		return 0, ErrDuplicate
	}
	if size > fa.capacity-fa.used {
		return 0, ErrNoSpace
	}

	idx := fa.bestFit(size)
	if idx < 0 {
		fa.compact()
		idx = fa.bestFit(size)
		if idx < 0 {
			// Unreachable while the accounting invariant holds.
			return 0, ErrNoSpace
		}
	}

	ext := &fa.free[idx]
	off := ext.Offset
	ext.Offset += size
	ext.Length -= size
	if ext.Length == 0 {
		fa.free = slices.Delete(fa.free, idx, idx+1)
	}

	fa.regions[pid] = Region{Offset: off, Length: size}
	fa.used += size
	return off, nil
}

// Free releases the region of pid into the free list.
func (fa *BestFitAllocator) Free(pid int) bool {
	r, ok := fa.regions[pid]
	if !ok {
		return false
	}
	delete(fa.regions, pid)
	fa.used -= r.Length
	fa.insertFree(r)
	return true
}

// Info reports aggregate occupancy.
func (fa *BestFitAllocator) Info() Info {
	return Info{Total: fa.capacity, Used: fa.used, Free: fa.capacity - fa.used}
}

// Region returns the region recorded for pid.
func (fa *BestFitAllocator) Region(pid int) (Region, bool) {
	r, ok := fa.regions[pid]
	return r, ok
}

// Policy returns PolicyBestFit.
func (fa *BestFitAllocator) Policy() Policy { return PolicyBestFit }

// FreeExtents returns a copy of the free list in offset order.
func (fa *BestFitAllocator) FreeExtents() []Region {
	return slices.Clone(fa.free)
}

// Compactions reports how many times live regions have been relocated.
func (fa *BestFitAllocator) Compactions() int { return fa.compactions }

func (fa *BestFitAllocator) bestFit(size int) int {
	best := -1
	for i, ext := range fa.free {
		if ext.Length < size {
			continue
		}
		if best < 0 || ext.Length < fa.free[best].Length {
			best = i
		}
	}
	return best
}

// insertFree adds r to the free list, merging it with the extent that ends at
// r.Offset and the one that starts at r.End().
func (fa *BestFitAllocator) insertFree(r Region) {
	i, _ := slices.BinarySearchFunc(fa.free, r.Offset, func(e Region, off int) int {
		return cmp.Compare(e.Offset, off)
	})

	mergePrev := i > 0 && fa.free[i-1].End() == r.Offset
	mergeNext := i < len(fa.free) && r.End() == fa.free[i].Offset

	switch {
	case mergePrev && mergeNext:
		fa.free[i-1].Length += r.Length + fa.free[i].Length
		fa.free = slices.Delete(fa.free, i, i+1)
	case mergePrev:
		fa.free[i-1].Length += r.Length
	case mergeNext:
		fa.free[i].Offset = r.Offset
		fa.free[i].Length += r.Length
	default:
		fa.free = slices.Insert(fa.free, i, r)
	}
}

// compact slides every live region down to the lowest free address, keeping
// their relative order, and leaves one free extent at the top.
func (fa *BestFitAllocator) compact() {
	pids := make([]int, 0, len(fa.regions))
	for pid := range fa.regions {
		pids = append(pids, pid)
	}
	slices.SortFunc(pids, func(a, b int) int {
		return cmp.Compare(fa.regions[a].Offset, fa.regions[b].Offset)
	})

	cursor := 0
	for _, pid := range pids {
		r := fa.regions[pid]
		r.Offset = cursor
		fa.regions[pid] = r
		cursor += r.Length
	}

	fa.free = fa.free[:0]
	if cursor < fa.capacity {
		fa.free = append(fa.free, Region{Offset: cursor, Length: fa.capacity - cursor})
	}
	fa.compactions++
}

// Compile-time interface check
var _ Allocator = (*BestFitAllocator)(nil)
