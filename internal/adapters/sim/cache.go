package sim

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

type way struct {
	line     uintptr
	valid    bool
	lastUsed uint64
}

// Cache is a set-associative cache with LRU replacement. Lines are spread
// over sets by a hash of their address, the way sliced last-level caches do,
// so neighboring lines do not compete for one set.
type Cache struct {
	sets [][]way
	tick uint64
}

// NewCache creates an empty cache of sets*ways lines.
func NewCache(sets, ways int) *Cache {
	c := &Cache{sets: make([][]way, sets)}
	for i := range c.sets {
		c.sets[i] = make([]way, ways)
	}
	return c
}

func (c *Cache) set(line uintptr) []way {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], uint64(line))
	return c.sets[xxhash.Sum64(key[:])%uint64(len(c.sets))]
}

// Lookup reports whether line is cached and marks it as recently used.
func (c *Cache) Lookup(line uintptr) bool {
	c.tick++
	set := c.set(line)
	for i := range set {
		if set[i].valid && set[i].line == line {
			set[i].lastUsed = c.tick
			return true
		}
	}
	return false
}

// Contains reports whether line is cached without touching the LRU state.
func (c *Cache) Contains(line uintptr) bool {
	for _, w := range c.set(line) {
		if w.valid && w.line == line {
			return true
		}
	}
	return false
}

// Fill brings line into the cache, evicting the least recently used way of
// its set when the set is full.
func (c *Cache) Fill(line uintptr) {
	if c.Lookup(line) {
		return
	}
	set := c.set(line)
	victim := 0
	for i := range set {
		if !set[i].valid {
			victim = i
			break
		}
		if set[i].lastUsed < set[victim].lastUsed {
			victim = i
		}
	}
	set[victim] = way{line: line, valid: true, lastUsed: c.tick}
}

// Evict drops line from the cache.
func (c *Cache) Evict(line uintptr) {
	set := c.set(line)
	for i := range set {
		if set[i].valid && set[i].line == line {
			set[i] = way{}
			return
		}
	}
}
