package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Alpha Tale", "A"},
		{"alpha tale", "A"},
		{"  moon's Legacy", "M"},
		{"Zed", "Z"},
		{"1st Love", OtherBucket},
		{"[Prologue] Dawn", OtherBucket},
		{"Élan", OtherBucket},
		{"月の物語", OtherBucket},
		{"", OtherBucket},
		{"   ", OtherBucket},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, BucketKey(tt.title))
		})
	}
}

func TestBucketKeys(t *testing.T) {
	keys := BucketKeys()

	require.Len(t, keys, 27)
	assert.Equal(t, OtherBucket, keys[0])
	assert.Equal(t, "A", keys[1])
	assert.Equal(t, "Z", keys[26])
}

func TestNewCatalog_EveryEntryInExactlyOneBucket(t *testing.T) {
	entries := []Entry{
		{Title: "Moon's Legacy", Link: "http://x/1"},
		{Title: "Alpha Tale", Link: "http://x/2"},
		{Title: "alpha Dawn", Link: "http://x/3"},
		{Title: "99 Nights", Link: "http://x/4"},
		{Title: "Alpha Tale", Link: "http://x/5"},
	}

	c := NewCatalog(entries)

	total := 0

	for _, key := range BucketKeys() {
		bucket := c.Bucket(key)
		total += len(bucket)

		for _, e := range bucket {
			assert.Equal(t, key, BucketKey(e.Title))
		}
	}

	assert.Equal(t, len(entries), total)
	assert.Equal(t, []Entry{entries[1], entries[2], entries[4]}, c.Bucket("A"), "bucket keeps catalog order and duplicates")
	assert.Equal(t, []Entry{entries[3]}, c.Bucket(OtherBucket))
}

func TestNewCatalog_AllBucketsPresent(t *testing.T) {
	c := NewCatalog(nil)

	for _, key := range BucketKeys() {
		_, ok := c.buckets[key]
		assert.True(t, ok, "bucket %q missing", key)
	}

	assert.Equal(t, 0, c.Len())
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	entries := []Entry{{Title: "Alpha", Link: "http://x/1"}}
	c := NewCatalog(entries)

	entries[0].Title = "Changed"

	assert.Equal(t, "Alpha", c.Entries()[0].Title)

	got := c.Entries()
	got[0].Title = "Changed again"

	assert.Equal(t, "Alpha", c.Entries()[0].Title)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog

	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Entries())
	assert.Nil(t, c.Bucket("A"))
}
