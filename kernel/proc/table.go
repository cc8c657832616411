package proc

import "slices"

// State is the lifecycle state of a process.
type State string

// Running is the only state a live process can be in.
const Running State = "Running"

// Process is one entry in the table.
type Process struct {
	PID   int
	Name  string
	Size  int
	State State

	offset    int
	hasOffset bool
}

// Offset returns the start of the process's region, if one was recorded.
func (p *Process) Offset() (int, bool) {
	return p.offset, p.hasOffset
}

// Table holds live processes in creation order.
type Table struct {
	nextPID int
	byPID   map[int]*Process
	order   []int
}

// NewTable returns an empty table whose first pid is 1.
func NewTable() *Table {
	return &Table{
		nextPID: 1,
		byPID:   make(map[int]*Process),
	}
}

// Create stores a new Running process with no region and returns it.
// Pids increase monotonically and are never handed out twice.
func (t *Table) Create(name string, size int) *Process {
	p := &Process{
		PID:   t.nextPID,
		Name:  name,
		Size:  size,
		State: Running,
	}
	t.nextPID++
	t.byPID[p.PID] = p
	t.order = append(t.order, p.PID)
	return p
}

// Terminate removes pid and returns the removed process.
func (t *Table) Terminate(pid int) (*Process, bool) {
	p, ok := t.byPID[pid]
	if !ok {
		return nil, false
	}
	delete(t.byPID, pid)
	if i := slices.Index(t.order, pid); i >= 0 {
		t.order = slices.Delete(t.order, i, i+1)
	}
	return p, true
}

// Get looks up a live process.
func (t *Table) Get(pid int) (*Process, bool) {
	p, ok := t.byPID[pid]
	return p, ok
}

// SetOffset records the region start for pid. Reports false for unknown pids.
func (t *Table) SetOffset(pid, offset int) bool {
	p, ok := t.byPID[pid]
	if !ok {
		return false
	}
	p.offset = offset
	p.hasOffset = true
	return true
}

// List returns live processes in creation order.
func (t *Table) List() []*Process {
	out := make([]*Process, 0, len(t.order))
	for _, pid := range t.order {
		out = append(out, t.byPID[pid])
	}
	return out
}

// Len reports the number of live processes.
func (t *Table) Len() int { return len(t.order) }

// NextPID reports the pid the next Create will assign.
func (t *Table) NextPID() int { return t.nextPID }
