// Package cache memoizes parsed path data.
//
// Documents often repeat the same "d" attribute many times (icons, glyph
// outlines, symbols). Paths parses each distinct string once and shares
// the result.
package cache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/gogpu/svgpath"
)

const (
	// ShardCount is the number of independently locked shards.
	// Must be a power of 2 for fast modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the default maximum entries per shard.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Paths is a thread-safe, sharded LRU cache of parsed paths keyed by
// path data.
//
// Cached paths are shared between callers and must not be modified.
// Clone a path before changing it.
type Paths struct {
	shards   [ShardCount]*shard
	capacity int // per shard
	group    singleflight.Group

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List // front is most recently used
}

type entry struct {
	d    string
	path *svgpath.Path
}

// Stats is a snapshot of cache statistics.
type Stats struct {
	Len       int
	Capacity  int // total across shards
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// New creates a cache holding up to capacity paths per shard.
// If capacity <= 0, DefaultCapacity is used.
func New(capacity int) *Paths {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Paths{capacity: capacity}
	for i := range c.shards {
		c.shards[i] = &shard{
			entries: make(map[string]*list.Element),
			lru:     list.New(),
		}
	}
	return c
}

func hash(d string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(d)) // fnv.Write never returns an error
	return h.Sum64()
}

func (c *Paths) shardFor(d string) *shard {
	return c.shards[hash(d)&shardMask]
}

// Get returns the cached path for d, if present.
func (c *Paths) Get(d string) (*svgpath.Path, bool) {
	s := c.shardFor(d)
	s.mu.Lock()
	el, ok := s.entries[d]
	if ok {
		s.lru.MoveToFront(el)
	}
	s.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return el.Value.(*entry).path, true
}

// Parse returns the parsed path for d, parsing and caching it on a miss.
// Concurrent misses for the same d parse it once.
func (c *Paths) Parse(d string) *svgpath.Path {
	if p, ok := c.Get(d); ok {
		return p
	}
	v, _, _ := c.group.Do(d, func() (any, error) {
		// Another caller may have stored it between Get and Do.
		if p, ok := c.peek(d); ok {
			return p, nil
		}
		p := svgpath.Parse(d)
		c.store(d, p)
		return p, nil
	})
	return v.(*svgpath.Path)
}

func (c *Paths) peek(d string) (*svgpath.Path, bool) {
	s := c.shardFor(d)
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[d]; ok {
		return el.Value.(*entry).path, true
	}
	return nil, false
}

func (c *Paths) store(d string, p *svgpath.Path) {
	s := c.shardFor(d)
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.entries[d]; ok {
		el.Value.(*entry).path = p
		s.lru.MoveToFront(el)
		return
	}
	for s.lru.Len() >= c.capacity {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).d)
		c.evictions.Add(1)
	}
	s.entries[d] = s.lru.PushFront(&entry{d: d, path: p})
}

// Delete removes d from the cache and reports whether it was present.
func (c *Paths) Delete(d string) bool {
	s := c.shardFor(d)
	s.mu.Lock()
	defer s.mu.Unlock()

	el, ok := s.entries[d]
	if !ok {
		return false
	}
	s.lru.Remove(el)
	delete(s.entries, d)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *Paths) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*list.Element)
		s.lru.Init()
		s.mu.Unlock()
	}
}

// Len returns the number of cached paths.
func (c *Paths) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Paths) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity * ShardCount,
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		HitRate:   hitRate,
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Paths) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
