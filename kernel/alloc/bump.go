package alloc

// BumpAllocator grants every region at the current Used value.
//
// Key characteristics:
//   - O(1) allocation: the offset is the aggregate counter, no scanning
//   - Free only decrements Used; the freed range is not remembered
//   - Offsets are not guaranteed unique over time: freeing a region that is
//     not the highest one and allocating again hands out a range that can
//     lie inside a region still alive above it
//
// This is the default policy. Use BestFitAllocator when non-overlapping
// offsets matter.
type BumpAllocator struct {
	capacity int
	used     int
	regions  map[int]Region
}

// NewBump creates a BumpAllocator over capacity bytes.
func NewBump(capacity int) *BumpAllocator {
	return &BumpAllocator{
		capacity: capacity,
		regions:  make(map[int]Region),
	}
}

// Alloc grants size bytes at offset Used.
func (ba *BumpAllocator) Alloc(size, pid int) (int, error) {
	if size <= 0 {
		return 0, ErrBadSize
	}
	if _, ok := ba.regions[pid]; ok {
		return 0, ErrDuplicate
	}
	if size > ba.capacity-ba.used {
		return 0, ErrNoSpace
	}

	off := ba.used
	ba.regions[pid] = Region{Offset: off, Length: size}
	ba.used += size
	return off, nil
}

// Free removes the region of pid and gives its length back to the pool.
func (ba *BumpAllocator) Free(pid int) bool {
	r, ok := ba.regions[pid]
	if !ok {
		return false
	}
	delete(ba.regions, pid)
	ba.used -= r.Length
	return true
}

// Info reports aggregate occupancy.
func (ba *BumpAllocator) Info() Info {
	return Info{Total: ba.capacity, Used: ba.used, Free: ba.capacity - ba.used}
}

// Region returns the region recorded for pid.
func (ba *BumpAllocator) Region(pid int) (Region, bool) {
	r, ok := ba.regions[pid]
	return r, ok
}

// Policy returns PolicyBump.
func (ba *BumpAllocator) Policy() Policy { return PolicyBump }

// Compile-time interface check
var _ Allocator = (*BumpAllocator)(nil)
