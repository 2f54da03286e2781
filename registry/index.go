package registry

import (
	"errors"
	"sync"

	"memdex/btree"
)

// ErrEmptyKey rejects the empty string, which the index reserves as the
// absent-key sentinel.
var ErrEmptyKey = errors.New("key must not be empty")

// Index is a named wrapper around a single string-keyed B-tree. Mutating
// calls are fully serialized against everything else; reads share a
// lock. This is the concurrency boundary the HTTP and REPL layers rely
// on.
type Index struct {
	name string
	mu   sync.RWMutex
	tree *btree.Tree[string]
}

func (ix *Index) Name() string {
	return ix.name
}

// Insert adds key to the index. Duplicate keys are accepted as-is.
func (ix *Index) Insert(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.tree.Insert(key)
	return nil
}

// Search reports whether key is present.
func (ix *Index) Search(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()

	_, _, found := ix.tree.Search(key)
	return found, nil
}

// Keys returns the full ascending key sequence.
func (ix *Index) Keys() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.tree.Keys()
}

func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return ix.tree.Len()
}

// Visualize renders the underlying tree level by level.
func (ix *Index) Visualize() string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	v := &btree.Visualizer[string]{Tree: ix.tree}
	return v.Visualize()
}

type Stats struct {
	Name   string `json:"name"`
	Degree int    `json:"degree"`
	Keys   int    `json:"keys"`
	Height int    `json:"height"`
}

func (ix *Index) Stats() Stats {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	return Stats{
		Name:   ix.name,
		Degree: ix.tree.Degree(),
		Keys:   ix.tree.Len(),
		Height: ix.tree.Height(),
	}
}
