// Package catalog holds the in-memory novel catalog and the read-only queries the bot
// answers from it.
//
// A Catalog is built once from the backing CSV file and never mutated afterwards.
// Derived structures (the per-letter index and the normalized titles used for search)
// are computed at construction, so every query is a plain read over shared data and is
// safe for concurrent use without locking.
package catalog

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OtherBucket is the bucket key for titles that do not start with an ASCII letter.
const OtherBucket = "#"

// Entry is a single catalog row. Identity is positional: two entries with the same
// title are still distinct rows.
type Entry struct {
	Title string
	Link  string
}

// Catalog is an ordered, immutable sequence of entries in file order.
type Catalog struct {
	entries    []Entry
	normalized []string
	buckets    map[string][]Entry
}

// NewCatalog builds a catalog and its derived indexes from entries.
// The slice is copied; later changes to it do not affect the catalog.
func NewCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		entries:    slices.Clone(entries),
		normalized: make([]string, len(entries)),
		buckets:    make(map[string][]Entry, len(BucketKeys())),
	}

	for _, key := range BucketKeys() {
		c.buckets[key] = nil
	}

	for i, e := range c.entries {
		c.normalized[i] = normalize(e.Title)

		key := BucketKey(e.Title)
		c.buckets[key] = append(c.buckets[key], e)
	}

	return c
}

// Current returns c itself so a fixed catalog can be used wherever a Source is expected.
func (c *Catalog) Current() *Catalog {
	return c
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}

	return slices.Clone(c.entries)
}

// Bucket returns a copy of the entries filed under key, in catalog order.
func (c *Catalog) Bucket(key string) []Entry {
	if c == nil {
		return nil
	}

	return slices.Clone(c.buckets[key])
}

// BucketKeys returns every bucket key in display order: "#" first, then A to Z.
func BucketKeys() []string {
	keys := make([]string, 0, 27)
	keys = append(keys, OtherBucket)

	for r := 'A'; r <= 'Z'; r++ {
		keys = append(keys, string(r))
	}

	return keys
}

// BucketKey maps a title to its bucket: the uppercased first character of the trimmed
// title when it is an ASCII letter, "#" otherwise.
func BucketKey(title string) string {
	return letterKey(strings.TrimSpace(title))
}

func letterKey(s string) string {
	if s == "" {
		return OtherBucket
	}

	ch := s[0]

	switch {
	case ch >= 'A' && ch <= 'Z':
		return string(ch)
	case ch >= 'a' && ch <= 'z':
		return string(ch - 'a' + 'A')
	default:
		return OtherBucket
	}
}

// normalize trims and lower-cases s for substring matching.
// A Caser is stateful, so one is created per call.
func normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
