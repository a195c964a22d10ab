package widgets

import (
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LookupCache memoizes filtered search lookups keyed by the record set
// version, the query and the filter.
type LookupCache interface {
	GetOrLookup(version uint64, query, filter string, lookup func() []SearchRecord) []SearchRecord
	Purge()
}

// LRULookupCache is a bounded in-memory LookupCache.
type LRULookupCache struct {
	cache *lru.Cache[string, []SearchRecord]
}

// NewLRULookupCache builds a cache holding at most size lookups. A
// non-positive size returns nil, which callers treat as "no cache".
func NewLRULookupCache(size int) *LRULookupCache {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, []SearchRecord](size)
	if err != nil {
		return nil
	}
	return &LRULookupCache{cache: cache}
}

// GetOrLookup returns a cached result or runs lookup and stores it.
// Results computed against an older version never answer a newer one.
func (c *LRULookupCache) GetOrLookup(version uint64, query, filter string, lookup func() []SearchRecord) []SearchRecord {
	if c == nil || c.cache == nil {
		return lookup()
	}
	key := lookupKey(version, query, filter)
	if records, ok := c.cache.Get(key); ok {
		return append([]SearchRecord(nil), records...)
	}
	records := lookup()
	c.cache.Add(key, append([]SearchRecord(nil), records...))
	return records
}

// Purge drops every cached lookup.
func (c *LRULookupCache) Purge() {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Purge()
}

// Len reports the number of cached lookups.
func (c *LRULookupCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

func lookupKey(version uint64, query, filter string) string {
	return strconv.FormatUint(version, 10) + "\x00" + strings.ToLower(query) + "\x00" + filter
}
