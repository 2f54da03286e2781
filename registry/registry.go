// Package registry manages named in-memory indexes, each wrapping one
// B-tree. It is the only layer that knows about names and concurrent
// callers; the tree itself stays single-threaded.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"memdex/btree"
)

type Registry struct {
	mu      sync.RWMutex
	indexes map[string]*Index
}

func New() *Registry {
	return &Registry{indexes: make(map[string]*Index)}
}

// Create registers a new index of the given degree. An empty name gets a
// generated id of the form idx_<uuid-prefix>.
func (r *Registry) Create(name string, degree int) (*Index, error) {
	if name == "" {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("failed to generate uuid: %v", err)
		}
		name = fmt.Sprintf("idx_%s", strings.Split(id.String(), "-")[0])
	}

	tree, err := btree.New[string](degree)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indexes[name]; exists {
		return nil, fmt.Errorf("index %q already exists", name)
	}

	ix := &Index{name: name, tree: tree}
	r.indexes[name] = ix
	return ix, nil
}

func (r *Registry) Get(name string) (*Index, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ix, exists := r.indexes[name]
	if !exists {
		return nil, fmt.Errorf("index %q not found", name)
	}
	return ix, nil
}

// Names lists all registered index names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.indexes))
	for name := range r.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Drop(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.indexes[name]; !exists {
		return fmt.Errorf("index %q not found", name)
	}
	delete(r.indexes, name)
	return nil
}
