package fs

import (
	"slices"
	"strings"
)

// RootName is the name of the root directory.
const RootName = "/"

// Parent is the name Cd treats as "move up one level".
const Parent = ".."

// Tree is the filesystem plus a working-directory cursor.
type Tree struct {
	root  *Dir
	stack []*Dir
}

// NewTree returns a tree holding only the root, with the root as cwd.
func NewTree() *Tree {
	root := newDir(RootName)
	return &Tree{root: root, stack: []*Dir{root}}
}

// Root returns the root directory.
func (t *Tree) Root() *Dir { return t.root }

// Cwd returns the current working directory.
func (t *Tree) Cwd() *Dir { return t.stack[len(t.stack)-1] }

// Depth reports how many directories lie below the root on the path stack.
func (t *Tree) Depth() int { return len(t.stack) - 1 }

// List returns the children of the working directory in insertion order.
func (t *Tree) List() []Node { return t.Cwd().Children() }

// CreateFile adds an empty file to the working directory.
func (t *Tree) CreateFile(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if !t.Cwd().add(&File{name: name}) {
		return ErrExist
	}
	return nil
}

// Mkdir adds an empty directory to the working directory.
func (t *Tree) Mkdir(name string) error {
	if err := validName(name); err != nil {
		return err
	}
	if !t.Cwd().add(newDir(name)) {
		return ErrExist
	}
	return nil
}

// WriteFile replaces the content of an existing file. The content is copied.
func (t *Tree) WriteFile(name string, content []byte) error {
	f, err := t.file(name)
	if err != nil {
		return err
	}
	f.content = slices.Clone(content)
	if f.content == nil {
		f.content = []byte{}
	}
	return nil
}

// ReadFile returns a copy of a file's content. An empty file yields an empty,
// non-nil slice.
func (t *Tree) ReadFile(name string) ([]byte, error) {
	f, err := t.file(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(f.content))
	copy(out, f.content)
	return out, nil
}

// Delete removes a child of the working directory together with its
// subtree. Only children of cwd are reachable, and those are never on the
// path stack, so the cursor stays valid.
func (t *Tree) Delete(name string) error {
	if !t.Cwd().remove(name) {
		return ErrNotExist
	}
	return nil
}

// Cd moves the working directory. Parent pops one level and fails with
// ErrAtRoot at the root; any other name must be a directory child of cwd.
func (t *Tree) Cd(name string) error {
	if name == Parent {
		if len(t.stack) == 1 {
			return ErrAtRoot
		}
		t.stack = t.stack[:len(t.stack)-1]
		return nil
	}

	n, ok := t.Cwd().lookup(name)
	if !ok {
		return ErrNotExist
	}
	d, ok := n.(*Dir)
	if !ok {
		return ErrNotDir
	}
	t.stack = append(t.stack, d)
	return nil
}

// Pwd renders the path stack: "/" for the root, "/a/b" below it.
func (t *Tree) Pwd() string {
	names := make([]string, 0, len(t.stack)-1)
	for _, d := range t.stack[1:] {
		names = append(names, d.name)
	}
	return RootName + strings.Join(names, "/")
}

func (t *Tree) file(name string) (*File, error) {
	n, ok := t.Cwd().lookup(name)
	if !ok {
		return nil, ErrNotExist
	}
	f, ok := n.(*File)
	if !ok {
		return nil, ErrIsDir
	}
	return f, nil
}

func validName(name string) error {
	if name == "" || name == "." || name == Parent || strings.Contains(name, "/") {
		return ErrInvalidName
	}
	return nil
}
