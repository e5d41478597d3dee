package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
)

func sampleCatalog() *Catalog {
	return NewCatalog([]Entry{
		{Title: "Moon's Legacy", Link: "http://x/1"},
		{Title: "Alpha Tale", Link: "http://x/2"},
		{Title: "The Villainess Returns", Link: "http://x/3"},
		{Title: "villainess in Tempest", Link: "http://x/4"},
		{Title: "100 Days of Moonlight", Link: "http://x/5"},
		{Title: "Tempest of the Moon", Link: "http://x/6"},
	})
}

func titlesOf(entries []Entry) []string {
	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		titles = append(titles, e.Title)
	}

	return titles
}

func TestEngine_CatalogExample(t *testing.T) {
	c := NewCatalog([]Entry{
		{Title: "Moon's Legacy", Link: "http://x/1"},
		{Title: "Alpha Tale", Link: "http://x/2"},
	})
	e := NewEngine(c)

	assert.Equal(t, []string{"Moon's Legacy"}, titlesOf(e.Search("moon")))
	assert.Equal(t, []string{"Alpha Tale"}, titlesOf(e.Browse("A").Entries))

	stats := e.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Buckets["M"])
	assert.Equal(t, 1, stats.Buckets["A"])
}

func TestEngine_Search(t *testing.T) {
	e := NewEngine(sampleCatalog())

	tests := []struct {
		name    string
		keyword string
		want    []string
	}{
		{"case insensitive", "MOON", []string{"Moon's Legacy", "100 Days of Moonlight", "Tempest of the Moon"}},
		{"surrounding whitespace", "  tempest ", []string{"villainess in Tempest", "Tempest of the Moon"}},
		{"partial word", "villain", []string{"The Villainess Returns", "villainess in Tempest"}},
		{"multi word phrase", "villainess returns", []string{"The Villainess Returns"}},
		{"no match", "dragon", []string{}},
		{"empty", "", []string{}},
		{"whitespace only", "   ", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titlesOf(e.Search(tt.keyword)))
		})
	}
}

func TestEngine_SearchSoundAndComplete(t *testing.T) {
	c := sampleCatalog()
	e := NewEngine(c)

	for _, kw := range []string{"moon", "THE", "e", "es", "100", "'s", "x"} {
		results := e.Search(kw)
		found := make(map[Entry]bool, len(results))

		for _, r := range results {
			assert.Contains(t, strings.ToLower(r.Title), strings.ToLower(kw))
			found[r] = true
		}

		for _, entry := range c.Entries() {
			if strings.Contains(strings.ToLower(entry.Title), strings.ToLower(kw)) {
				assert.True(t, found[entry], "%q missing from Search(%q)", entry.Title, kw)
			}
		}
	}
}

func TestEngine_Browse(t *testing.T) {
	e := NewEngine(sampleCatalog())

	tests := []struct {
		letter  string
		wantKey string
		want    []string
	}{
		{"T", "T", []string{"The Villainess Returns", "Tempest of the Moon"}},
		{"t", "T", []string{"The Villainess Returns", "Tempest of the Moon"}},
		{" m ", "M", []string{"Moon's Legacy"}},
		{"Moon", "M", []string{"Moon's Legacy"}},
		{"#", OtherBucket, []string{"100 Days of Moonlight"}},
		{"1", OtherBucket, []string{"100 Days of Moonlight"}},
		{"", OtherBucket, []string{"100 Days of Moonlight"}},
		{"Я", OtherBucket, []string{"100 Days of Moonlight"}},
		{"Q", "Q", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			res := e.Browse(tt.letter)

			assert.Equal(t, tt.wantKey, res.Key)
			assert.Equal(t, tt.want, titlesOf(res.Entries))
		})
	}
}

func TestEngine_BrowseCaseInsensitive(t *testing.T) {
	e := NewEngine(sampleCatalog())

	for r := 'A'; r <= 'Z'; r++ {
		upper := string(r)
		assert.Equal(t, e.Browse(upper), e.Browse(strings.ToLower(upper)))
	}
}

func TestEngine_Random(t *testing.T) {
	c := sampleCatalog()
	e := NewEngine(c)

	members := make(map[Entry]bool)
	for _, entry := range c.Entries() {
		members[entry] = true
	}

	for i := 0; i < 50; i++ {
		got, err := e.Random()
		require.NoError(t, err)
		assert.True(t, members[got])
	}
}

func TestEngine_RandomUsesWholeRange(t *testing.T) {
	c := sampleCatalog()
	e := NewEngine(c)

	var gotN int

	e.intN = func(n int) int {
		gotN = n
		return n - 1
	}

	got, err := e.Random()
	require.NoError(t, err)

	assert.Equal(t, c.Len(), gotN)
	assert.Equal(t, "Tempest of the Moon", got.Title)
}

func TestEngine_RandomEmpty(t *testing.T) {
	for name, src := range map[string]Source{
		"empty catalog": NewCatalog(nil),
		"unloaded store": &Store{},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewEngine(src).Random()

			assert.True(t, coreerrors.Is(err, coreerrors.ErrEmptyCatalog))
		})
	}
}

func TestEngine_Stats(t *testing.T) {
	c := sampleCatalog()
	stats := NewEngine(c).Stats()

	assert.Equal(t, c.Len(), stats.Total)
	assert.Len(t, stats.Buckets, 27)

	sum := 0
	for _, n := range stats.Buckets {
		sum += n
	}

	assert.Equal(t, c.Len(), sum)
	assert.Equal(t, 2, stats.Buckets["T"])
	assert.Equal(t, 1, stats.Buckets[OtherBucket])
	assert.Equal(t, 0, stats.Buckets["Q"])
}

func TestEngine_UnloadedStore(t *testing.T) {
	e := NewEngine(&Store{})

	assert.Empty(t, e.Search("moon"))
	assert.Empty(t, e.Browse("A").Entries)
	assert.Equal(t, 0, e.Stats().Total)
	assert.Len(t, e.Stats().Buckets, 27)
}

func TestStore_Swap(t *testing.T) {
	first := NewCatalog([]Entry{{Title: "Alpha", Link: "http://x/1"}})
	store := NewStore(first)
	e := NewEngine(store)

	require.True(t, store.Loaded())
	assert.Len(t, e.Search("alpha"), 1)

	second := NewCatalog([]Entry{{Title: "Beta", Link: "http://x/2"}})
	prev := store.Swap(second)

	assert.Same(t, first, prev)
	assert.Empty(t, e.Search("alpha"))
	assert.Len(t, e.Search("beta"), 1)
	assert.Equal(t, 1, first.Len(), "old snapshot is untouched")
}
