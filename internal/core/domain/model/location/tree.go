package location

import (
	"errors"
	"fmt"

	"wms/internal/core/domain/model/kernel"
)

// ErrCycleDetected is returned when a parent chain revisits a location.
var ErrCycleDetected = errors.New("location hierarchy contains a cycle")

// Tree is a read-only index over a set of locations keyed by identifier.
// Children are resolved through a precomputed index instead of live references,
// and every walk keeps a visited set so corrupt parent chains terminate.
type Tree struct {
	byID     map[kernel.UUID]*Location
	children map[kernel.UUID][]kernel.UUID
	order    []kernel.UUID
}

// NewTree indexes locations. Parents missing from the set are treated as roots.
func NewTree(locations []*Location) *Tree {
	t := &Tree{
		byID:     make(map[kernel.UUID]*Location, len(locations)),
		children: make(map[kernel.UUID][]kernel.UUID),
		order:    make([]kernel.UUID, 0, len(locations)),
	}
	for _, l := range locations {
		t.byID[l.ID()] = l
		t.order = append(t.order, l.ID())
	}
	for _, id := range t.order {
		if parent := t.byID[id].ParentID(); parent != nil {
			t.children[*parent] = append(t.children[*parent], id)
		}
	}
	return t
}

func (t *Tree) Get(id kernel.UUID) (*Location, bool) {
	l, ok := t.byID[id]
	return l, ok
}

// OfType returns the locations of the given type in insertion order.
func (t *Tree) OfType(locationType Type) []*Location {
	result := make([]*Location, 0)
	for _, id := range t.order {
		if l := t.byID[id]; l.Type() == locationType {
			result = append(result, l)
		}
	}
	return result
}

// Descendants returns every location below root, depth first. Root itself is excluded.
func (t *Tree) Descendants(root kernel.UUID) []*Location {
	result := make([]*Location, 0)
	visited := map[kernel.UUID]bool{root: true}
	stack := append([]kernel.UUID(nil), t.children[root]...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true

		l, ok := t.byID[id]
		if !ok {
			continue
		}
		result = append(result, l)
		stack = append(stack, t.children[id]...)
	}
	return result
}

// Path returns the chain from the topmost ancestor down to id.
func (t *Tree) Path(id kernel.UUID) ([]*Location, error) {
	path := make([]*Location, 0)
	visited := make(map[kernel.UUID]bool)

	current, ok := t.byID[id]
	for ok {
		if visited[current.ID()] {
			return nil, fmt.Errorf("%w: at %s", ErrCycleDetected, current.Code())
		}
		visited[current.ID()] = true
		path = append(path, current)

		parent := current.ParentID()
		if parent == nil {
			break
		}
		current, ok = t.byID[*parent]
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
