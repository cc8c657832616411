package fs

import "slices"

// Node is either a *File or a *Dir.
type Node interface {
	Name() string
	Size() int
	IsDir() bool

	node()
}

// File is a leaf holding bytes.
type File struct {
	name    string
	content []byte
}

func (f *File) Name() string { return f.name }

// Size is the length of the content in bytes.
func (f *File) Size() int   { return len(f.content) }
func (f *File) IsDir() bool { return false }
func (f *File) node()       {}

// Dir holds children keyed by name in insertion order.
type Dir struct {
	name     string
	children map[string]Node
	order    []string
}

func newDir(name string) *Dir {
	return &Dir{name: name, children: make(map[string]Node)}
}

func (d *Dir) Name() string { return d.name }

// Size is always 0 for directories.
func (d *Dir) Size() int   { return 0 }
func (d *Dir) IsDir() bool { return true }
func (d *Dir) node()       {}

// Len reports the number of direct children.
func (d *Dir) Len() int { return len(d.order) }

// Children returns direct children in insertion order.
func (d *Dir) Children() []Node {
	out := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.children[name])
	}
	return out
}

func (d *Dir) lookup(name string) (Node, bool) {
	n, ok := d.children[name]
	return n, ok
}

func (d *Dir) add(n Node) bool {
	if _, ok := d.children[n.Name()]; ok {
		return false
	}
	d.children[n.Name()] = n
	d.order = append(d.order, n.Name())
	return true
}

func (d *Dir) remove(name string) bool {
	if _, ok := d.children[name]; !ok {
		return false
	}
	delete(d.children, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return true
}

var (
	_ Node = (*File)(nil)
	_ Node = (*Dir)(nil)
)
