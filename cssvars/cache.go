/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssvars

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// Cache holds the extracted variables and reference map of one document.
type Cache struct {
	mu   sync.Mutex
	vars Variables
	refs ReferenceMap
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) variables() (Variables, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vars, c.vars != nil
}

// storeVariables keeps the first stored map; a concurrent loser gets the winner's map.
func (c *Cache) storeVariables(v Variables) Variables {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.vars == nil {
		c.vars = v
	}
	return c.vars
}

func (c *Cache) references() (ReferenceMap, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refs, c.refs != nil
}

func (c *Cache) storeReferences(r ReferenceMap) ReferenceMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.refs == nil {
		c.refs = r
	}
	return c.refs
}

// Populated reports whether variables have been cached.
func (c *Cache) Populated() bool {
	_, ok := c.variables()
	return ok
}

// Clear resets the cache; the next read rescans.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vars = nil
	c.refs = nil
}

// DefaultRegistrySize is the number of documents a Registry tracks by default.
const DefaultRegistrySize = 16

// Registry hands out one Extractor per preview document, so documents never
// share cached values. Least recently used documents are evicted.
type Registry struct {
	extractors *lru.Cache[string, *Extractor]
	opts       []Option
	log        *zap.Logger
}

// NewRegistry creates a registry tracking up to size documents.
// opts are applied to every extractor it creates.
func NewRegistry(size int, log *zap.Logger, opts ...Option) (*Registry, error) {
	if size <= 0 {
		size = DefaultRegistrySize
	}
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{opts: opts, log: log.Named("registry")}
	cache, err := lru.NewWithEvict(size, func(id string, _ *Extractor) {
		r.log.Debug("evicted document", zap.String("id", id))
	})
	if err != nil {
		return nil, err
	}
	r.extractors = cache
	return r, nil
}

// For returns the extractor for document id, creating it on first use.
func (r *Registry) For(id string) *Extractor {
	if e, ok := r.extractors.Get(id); ok {
		return e
	}
	opts := append([]Option{WithLogger(r.log)}, r.opts...)
	e := New(opts...)
	if prev, ok, _ := r.extractors.PeekOrAdd(id, e); ok {
		return prev
	}
	return e
}

// Invalidate clears the cache of document id, if tracked.
func (r *Registry) Invalidate(id string) {
	if e, ok := r.extractors.Peek(id); ok {
		e.ClearCache()
	}
}

// Remove forgets document id.
func (r *Registry) Remove(id string) {
	r.extractors.Remove(id)
}

// Purge forgets every document.
func (r *Registry) Purge() {
	r.extractors.Purge()
}

// Len returns the number of tracked documents.
func (r *Registry) Len() int {
	return r.extractors.Len()
}
