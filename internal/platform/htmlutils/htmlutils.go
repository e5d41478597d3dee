// Package htmlutils provides HTML helpers for Telegram messages.
//
// The package handles:
//   - UTF-16 length calculation (Telegram's native encoding)
//   - Safe href selection for catalog links
//   - Splitting long HTML replies into parts without breaking tags or entries
package htmlutils

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// utf16Len returns the number of UTF-16 code units needed to encode the string.
// Telegram counts message length in UTF-16 code units, not Unicode code points.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// utf16Slice returns the longest prefix of s that fits in maxUnits UTF-16 code units.
func utf16Slice(s string, maxUnits int) string {
	units := 0

	for i, r := range s {
		runeUnits := 1
		if r > 0xFFFF {
			runeUnits = 2 // surrogate pair
		}

		if units+runeUnits > maxUnits {
			return s[:i]
		}

		units += runeUnits
	}

	return s
}

var tagRegex = regexp.MustCompile(`<(/?)([a-zA-Z0-9-]+)([^>]*)>`)

// dangerousProtocols lists URL protocols that are never rendered as links.
var dangerousProtocols = []string{
	"javascript:",
	"vbscript:",
	"data:",
}

// SafeHref returns link escaped for use in an href attribute, or "" when the link is
// empty or uses a dangerous protocol.
func SafeHref(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	lower := strings.ToLower(link)
	for _, proto := range dangerousProtocols {
		if strings.HasPrefix(lower, proto) {
			return ""
		}
	}

	return html.EscapeString(link)
}

// Item boundary markers for entry-aware splitting.
// These are stripped before sending to Telegram.
const (
	ItemStart = "<!-- ITEM -->"
	ItemEnd   = "<!-- /ITEM -->"
)

// StripItemMarkers removes item boundary markers from text before sending to Telegram.
func StripItemMarkers(text string) string {
	text = strings.ReplaceAll(text, ItemStart, "")
	text = strings.ReplaceAll(text, ItemEnd, "")

	return text
}

// splitAfter lists markers where a part may end, keeping the marker in the current part.
var splitAfter = []string{
	ItemEnd + "\n", // between complete entries
	"\n\n",         // paragraph break
}

// splitBefore lists markers that should start the next part.
var splitBefore = []string{
	"\n💡 ", // trailing tip
	"\n🔤 ", // stats letter section
}

// SplitHTML splits an HTML string into parts whose visible text fits in limit UTF-16
// code units. It prefers entry and paragraph boundaries, then lines, then spaces, and
// closes and reopens tags that span a boundary. Item markers are kept; callers strip
// them with StripItemMarkers.
func SplitHTML(text string, limit int) []string {
	tokens := tokenizeHTML(text)

	if calculateTotalTextLen(tokens) <= limit {
		return []string{text}
	}

	splitter := &htmlSplitter{limit: limit}
	splitter.processTokens(tokens)

	return splitter.parts
}

type htmlToken struct {
	val      string
	isTag    bool
	isMarker bool
}

type htmlSplitter struct {
	parts      []string
	current    strings.Builder
	openTags   []string
	currentLen int
	limit      int
}

func tokenizeHTML(text string) []htmlToken {
	var tokens []htmlToken

	remaining := text
	for len(remaining) > 0 {
		tok, consumed := parseNextToken(remaining)
		if consumed == 0 {
			break
		}

		tokens = append(tokens, tok)
		remaining = remaining[consumed:]
	}

	return tokens
}

func parseNextToken(remaining string) (htmlToken, int) {
	if strings.HasPrefix(remaining, ItemStart) {
		return htmlToken{val: ItemStart, isTag: true, isMarker: true}, len(ItemStart)
	}

	if strings.HasPrefix(remaining, ItemEnd) {
		return htmlToken{val: ItemEnd, isTag: true, isMarker: true}, len(ItemEnd)
	}

	if tagMatch := tagRegex.FindStringIndex(remaining); tagMatch != nil && tagMatch[0] == 0 {
		return htmlToken{val: remaining[:tagMatch[1]], isTag: true}, tagMatch[1]
	}

	next := findNextBoundary(remaining)

	return htmlToken{val: remaining[:next]}, next
}

// findNextBoundary returns the offset of the next tag or marker, or len(remaining).
func findNextBoundary(remaining string) int {
	next := len(remaining)

	if tagMatch := tagRegex.FindStringIndex(remaining); tagMatch != nil {
		next = tagMatch[0]
	}

	for _, marker := range []string{ItemStart, ItemEnd} {
		if idx := strings.Index(remaining, marker); idx >= 0 && idx < next {
			next = idx
		}
	}

	return next
}

func calculateTotalTextLen(tokens []htmlToken) int {
	total := 0

	for _, t := range tokens {
		if !t.isTag {
			total += utf16Len(t.val)
		}
	}

	return total
}

func (s *htmlSplitter) processTokens(tokens []htmlToken) {
	for i, t := range tokens {
		if t.isTag {
			s.processTagToken(t, tokens, i)
		} else {
			s.processTextToken(t.val)
		}
	}

	s.flush()
}

func (s *htmlSplitter) processTagToken(t htmlToken, tokens []htmlToken, idx int) {
	if t.isMarker {
		if t.val == ItemStart {
			s.maybeFlushBeforeItem(tokens, idx)
		}

		s.current.WriteString(t.val)

		return
	}

	s.openTags = updateOpenTags(t.val, s.openTags)
	s.current.WriteString(t.val)
}

// maybeFlushBeforeItem starts a new part when the entry that begins at idx would not
// fit in the space left, so entries are not cut in half.
func (s *htmlSplitter) maybeFlushBeforeItem(tokens []htmlToken, idx int) {
	if s.currentLen == 0 {
		return
	}

	itemLen := 0

	for _, t := range tokens[idx+1:] {
		if t.isMarker && t.val == ItemEnd {
			break
		}

		if !t.isTag {
			itemLen += utf16Len(t.val)
		}
	}

	if itemLen <= s.limit && s.currentLen+itemLen > s.limit {
		s.flush()
	}
}

func (s *htmlSplitter) processTextToken(text string) {
	remaining := text

	for len(remaining) > 0 {
		canTake := s.limit - s.currentLen
		if canTake <= 0 {
			s.flush()
			canTake = s.limit
		}

		remainingLen := utf16Len(remaining)
		if remainingLen <= canTake {
			s.current.WriteString(remaining)
			s.currentLen += remainingLen

			return
		}

		toWrite, rest := findBestSplit(remaining, canTake)
		if toWrite == "" && s.currentLen == 0 {
			// a single rune wider than the limit still has to go somewhere
			_, size := utf8.DecodeRuneInString(remaining)
			toWrite, rest = remaining[:size], remaining[size:]
		}

		if toWrite != "" {
			s.current.WriteString(toWrite)
			s.currentLen += utf16Len(toWrite)
			remaining = strings.TrimLeft(rest, " \t\n\r")
		}

		if remaining != "" {
			s.flush()
		}
	}
}

func (s *htmlSplitter) flush() {
	if s.current.Len() == 0 {
		return
	}

	tagsLen := 0
	for _, tag := range s.openTags {
		tagsLen += len(tag)
	}

	if s.current.Len() <= tagsLen {
		return
	}

	content := strings.TrimRight(s.current.String(), " \t\n")

	for i := len(s.openTags) - 1; i >= 0; i-- {
		content += "</" + GetTagName(s.openTags[i]) + ">"
	}

	s.parts = append(s.parts, content)
	s.current.Reset()
	s.currentLen = 0

	for _, tag := range s.openTags {
		s.current.WriteString(tag)
	}
}

func findBestSplit(text string, maxUnits int) (toWrite, remainder string) {
	if utf16Len(text) <= maxUnits {
		return text, ""
	}

	searchText := utf16Slice(text, maxUnits)

	for _, sep := range splitAfter {
		if pos := strings.LastIndex(searchText, sep); pos > 0 {
			at := pos + len(sep)
			return searchText[:at], text[at:]
		}
	}

	for _, sep := range splitBefore {
		if pos := strings.LastIndex(searchText, sep); pos > 0 {
			return searchText[:pos+1], text[pos+1:]
		}
	}

	if pos := strings.LastIndex(searchText, "\n"); pos > 0 {
		return searchText[:pos+1], text[pos+1:]
	}

	if pos := strings.LastIndex(searchText, " "); pos > 0 {
		return searchText[:pos+1], text[pos+1:]
	}

	return searchText, text[len(searchText):]
}

// GetTagName returns the element name of an opening or closing tag.
func GetTagName(fullTag string) string {
	tag := strings.Trim(fullTag, "<>")

	parts := strings.Fields(tag)
	if len(parts) > 0 {
		return strings.TrimPrefix(parts[0], "/")
	}

	return ""
}

func updateOpenTags(tag string, openTags []string) []string {
	for _, match := range tagRegex.FindAllStringSubmatch(tag, -1) {
		tagName := strings.ToLower(match[2])

		if match[1] != "/" {
			openTags = append(openTags, match[0])
			continue
		}

		for i := len(openTags) - 1; i >= 0; i-- {
			if strings.ToLower(GetTagName(openTags[i])) == tagName {
				openTags = openTags[:i]
				break
			}
		}
	}

	return openTags
}
