package catalog

import (
	"math/rand/v2"
	"strings"

	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
)

// Source yields the catalog snapshot a query should run against.
type Source interface {
	Current() *Catalog
}

// BrowseResult is the bucket selected by Browse.
type BrowseResult struct {
	Key     string
	Entries []Entry
}

// Stats holds aggregate counts over a catalog.
type Stats struct {
	Total   int
	Buckets map[string]int
}

// Engine answers search, browse, random and stats queries. Each call reads one
// snapshot from its Source and never modifies it.
type Engine struct {
	source Source
	intN   func(n int) int
}

// NewEngine creates an engine reading from source.
func NewEngine(source Source) *Engine {
	return &Engine{
		source: source,
		intN:   rand.IntN,
	}
}

// Search returns, in catalog order, every entry whose title contains keyword,
// ignoring case and surrounding whitespace. A blank keyword matches nothing.
func (e *Engine) Search(keyword string) []Entry {
	needle := normalize(keyword)
	if needle == "" {
		return nil
	}

	c := e.source.Current()
	if c == nil {
		return nil
	}

	var results []Entry

	for i, title := range c.normalized {
		if strings.Contains(title, needle) {
			results = append(results, c.entries[i])
		}
	}

	return results
}

// Browse returns the bucket for letter. Only the first character is considered;
// anything outside A-Z (in either case) selects the "#" bucket.
func (e *Engine) Browse(letter string) BrowseResult {
	key := BrowseKey(letter)

	return BrowseResult{
		Key:     key,
		Entries: e.source.Current().Bucket(key),
	}
}

// BrowseKey normalizes a user-supplied letter to a bucket key.
func BrowseKey(letter string) string {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return OtherBucket
	}

	// Multi-byte first characters are never ASCII letters, so one byte is enough.
	return letterKey(letter[:1])
}

// Random returns an entry chosen uniformly from the catalog.
// It fails with ErrEmptyCatalog when there is nothing to choose from.
func (e *Engine) Random() (Entry, error) {
	c := e.source.Current()
	if c.Len() == 0 {
		return Entry{}, coreerrors.ErrEmptyCatalog
	}

	return c.entries[e.intN(len(c.entries))], nil
}

// Stats returns the total entry count and the size of every bucket, including empty ones.
func (e *Engine) Stats() Stats {
	c := e.source.Current()

	stats := Stats{
		Total:   c.Len(),
		Buckets: make(map[string]int, 27),
	}

	for _, key := range BucketKeys() {
		stats.Buckets[key] = 0
	}

	if c == nil {
		return stats
	}

	for key, bucket := range c.buckets {
		stats.Buckets[key] = len(bucket)
	}

	return stats
}
