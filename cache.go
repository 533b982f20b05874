package b32

import "sync"

// invalidIndex marks bytes outside the alphabet in a decode table.
const invalidIndex = 0xFF

// indexKey distinguishes decode tables by alphabet content and case
// handling; two Encodings with equal alphabets share one table.
type indexKey struct {
	alphabet      string
	caseSensitive bool
}

// IndexCache is a registry of symbol→value decode tables. Tables are
// built lazily on first use, at most once per key, and are never
// mutated or evicted afterwards, so concurrent decoders share them
// freely. Encodings use a process-wide cache unless one is injected
// with [Encoding.WithIndexCache].
type IndexCache struct {
	mu     sync.RWMutex
	tables map[indexKey]*[256]byte
}

// NewIndexCache returns an empty cache.
func NewIndexCache() *IndexCache {
	return &IndexCache{tables: make(map[indexKey]*[256]byte)}
}

var defaultCache = NewIndexCache()

func (c *IndexCache) table(alphabet string, caseSensitive bool) *[256]byte {
	key := indexKey{alphabet, caseSensitive}
	c.mu.RLock()
	t := c.tables[key]
	c.mu.RUnlock()
	if t != nil {
		return t
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Re-check: another goroutine may have built it while we waited.
	if t := c.tables[key]; t != nil {
		return t
	}
	t = buildIndex(alphabet, caseSensitive)
	c.tables[key] = t
	return t
}

// buildIndex maps each alphabet symbol to its 5-bit value. For
// case-insensitive tables both ASCII cases of a letter are registered,
// so lookups need no per-symbol normalization.
func buildIndex(alphabet string, caseSensitive bool) *[256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidIndex
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = byte(i)
		if caseSensitive {
			continue
		}
		switch {
		case c >= 'A' && c <= 'Z':
			t[c+'a'-'A'] = byte(i)
		case c >= 'a' && c <= 'z':
			t[c-'a'+'A'] = byte(i)
		}
	}
	return &t
}
