// Package render turns catalog query results into Telegram HTML messages.
//
// Every function is pure: the same input always yields the same text. Result lists are
// cut to a configured number of shown items and finished with a "more" line, and every
// catalog-supplied string is HTML-escaped before it is placed in markup.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/moonread/catalog-bot/internal/catalog"
	"github.com/moonread/catalog-bot/internal/platform/htmlutils"
)

// Default limits on the number of entries shown in one reply.
const (
	DefaultSearchLimit = 20
	DefaultBrowseLimit = 30
)

// Options configures a Renderer.
type Options struct {
	SearchLimit    int
	BrowseLimit    int
	SupportContact string
}

// Renderer formats query results.
type Renderer struct {
	searchLimit    int
	browseLimit    int
	supportContact string
}

// New creates a Renderer. Non-positive limits fall back to the defaults.
func New(opts Options) *Renderer {
	r := &Renderer{
		searchLimit:    opts.SearchLimit,
		browseLimit:    opts.BrowseLimit,
		supportContact: opts.SupportContact,
	}

	if r.searchLimit <= 0 {
		r.searchLimit = DefaultSearchLimit
	}

	if r.browseLimit <= 0 {
		r.browseLimit = DefaultBrowseLimit
	}

	return r
}

// Search renders the results of a keyword search.
func (r *Renderer) Search(keyword string, results []catalog.Entry) string {
	kw := html.EscapeString(strings.TrimSpace(keyword))

	if len(results) == 0 {
		return fmt.Sprintf("📭 No books found for: <b>%s</b>\n\nTry different keywords!", kw)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "🔍 <b>Search Results for: %s</b>\n\n", kw)
	fmt.Fprintf(&sb, "Found <b>%d</b> book(s)\n", len(results))

	if len(results) > r.searchLimit {
		fmt.Fprintf(&sb, "<i>(Showing first %d results)</i>\n", r.searchLimit)
	}

	sb.WriteString("\n")

	hidden := writeEntries(&sb, results, r.searchLimit)
	if hidden > 0 {
		fmt.Fprintf(&sb, "<i>...and %d more results</i>\n", hidden)
		sb.WriteString("\n💡 Tip: Use more specific keywords to narrow results")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Browse renders one letter bucket.
func (r *Renderer) Browse(res catalog.BrowseResult) string {
	key := html.EscapeString(res.Key)

	if len(res.Entries) == 0 {
		return fmt.Sprintf("📭 No books found starting with: <b>%s</b>", key)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "📚 <b>Books starting with '%s'</b>\n\n", key)
	fmt.Fprintf(&sb, "Total: <b>%d</b> book(s)\n", len(res.Entries))

	if len(res.Entries) > r.browseLimit {
		fmt.Fprintf(&sb, "<i>(Showing first %d)</i>\n", r.browseLimit)
	}

	sb.WriteString("\n")

	hidden := writeEntries(&sb, res.Entries, r.browseLimit)
	if hidden > 0 {
		fmt.Fprintf(&sb, "<i>...and %d more books</i>\n", hidden)

		if res.Key != catalog.OtherBucket {
			fmt.Fprintf(&sb, "\n💡 Use <code>/search %s</code> for better filtering", strings.ToLower(key))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Random renders a single recommended entry.
func (r *Renderer) Random(e catalog.Entry) string {
	return "📖 <b>Random Book Recommendation</b>\n\n" +
		entryLink(e) + "\n\n" +
		"Want another? Type <code>/random</code> again!"
}

// EmptyCatalog is shown when a command needs entries but none are loaded.
func (r *Renderer) EmptyCatalog() string {
	return "❌ Catalog not loaded. Please try again later."
}

// Stats renders catalog totals and the size of each non-empty bucket.
func (r *Renderer) Stats(s catalog.Stats) string {
	if s.Total == 0 {
		return r.EmptyCatalog()
	}

	var sb strings.Builder

	sb.WriteString("📊 <b>Moon Read Catalog Statistics</b>\n\n")
	fmt.Fprintf(&sb, "📚 <b>Total Books:</b> %d\n\n", s.Total)
	sb.WriteString("🔤 <b>Books by Letter:</b>\n")

	for _, key := range catalog.BucketKeys() {
		if n := s.Buckets[key]; n > 0 {
			fmt.Fprintf(&sb, "• %s: %d\n", key, n)
		}
	}

	sb.WriteString("\n💡 Use <code>/browse &lt;letter&gt;</code> to see books for any letter!")

	return sb.String()
}

// writeEntries writes up to limit numbered entries, each wrapped in item markers so the
// splitter keeps an entry in one message part. It returns how many entries were left out.
func writeEntries(sb *strings.Builder, entries []catalog.Entry, limit int) int {
	shown := entries
	if len(shown) > limit {
		shown = shown[:limit]
	}

	for i, e := range shown {
		sb.WriteString(htmlutils.ItemStart)
		fmt.Fprintf(sb, "%d. %s", i+1, entryLink(e))
		sb.WriteString(htmlutils.ItemEnd)
		sb.WriteString("\n\n")
	}

	return len(entries) - len(shown)
}

// entryLink renders an entry as a link, or as bold text when the link is unusable.
func entryLink(e catalog.Entry) string {
	title := html.EscapeString(e.Title)

	href := htmlutils.SafeHref(e.Link)
	if href == "" {
		return "<b>" + title + "</b>"
	}

	return `<a href="` + href + `">` + title + `</a>`
}
