// Package memory provides process-local repositories used for local
// development (STORE=memory) and tests. Documents keep insertion order so
// listings mirror the natural order of the document store.
package memory

import (
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// collection is an ordered, mutex-guarded map of documents keyed by id.
type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]*T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]*T)}
}

// insert stores the document built for a freshly generated id.
func (c *collection[T]) insert(build func(id string) *T) string {
	id := uuid.NewString()
	doc := build(id)
	c.mu.Lock()
	c.items[id] = doc
	c.order = append(c.order, id)
	c.mu.Unlock()
	return id
}

// get applies fn to the document under the read lock. fn must not retain doc.
func (c *collection[T]) get(id string, fn func(doc *T)) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.items[id]
	if ok {
		fn(doc)
	}
	return ok
}

// update applies fn to the document under the write lock.
func (c *collection[T]) update(id string, fn func(doc *T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.items[id]
	if ok {
		fn(doc)
	}
	return ok
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	c.order = slices.DeleteFunc(c.order, func(v string) bool { return v == id })
	return true
}

// each visits documents in insertion order until fn returns false.
func (c *collection[T]) each(fn func(id string, doc *T) bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if !fn(id, c.items[id]) {
			return
		}
	}
}

func cloneFields(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}
