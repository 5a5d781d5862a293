package notes

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Style is a named background colour.
type Style struct {
	Name       string
	Background string // #rrggbb
}

// StyleSearch marks occurrences of the last search term.
var StyleSearch = Style{Name: "search_highlight", Background: "#ffff00"}

// LayerStyles maps each layer marker to its colour. Suffixed markers share
// the colour of their bare form.
var LayerStyles = map[string]Style{
	"L1": {Name: "L1", Background: "#add8e6"},
	"L2": {Name: "L2", Background: "#90ee90"},
	"L3": {Name: "L3", Background: "#ffcccb"},
	"L4": {Name: "L4", Background: "#ffa500"},
	"L5": {Name: "L5", Background: "#d3d3d3"},
}

// Span is a styled half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
	Style Style
}

// Segment is a maximal run of text with one style; Style is nil for plain text.
type Segment struct {
	Start int
	End   int
	Style *Style
}

// FindAll returns the byte ranges of case-insensitive, non-overlapping
// occurrences of term in text, scanning left to right.
func FindAll(text, term string) [][2]int {
	if term == "" || text == "" {
		return nil
	}
	n := utf8.RuneCountInString(term)

	var out [][2]int
	for i := 0; i < len(text); {
		end, ok := advanceRunes(text, i, n)
		if ok && strings.EqualFold(text[i:end], term) {
			out = append(out, [2]int{i, end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return out
}

// advanceRunes returns the byte offset n runes after start.
func advanceRunes(s string, start, n int) (int, bool) {
	i := start
	for k := 0; k < n; k++ {
		if i >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, true
}

// SearchSpans highlights every occurrence of term.
func SearchSpans(text, term string) []Span {
	var spans []Span
	for _, r := range FindAll(text, term) {
		spans = append(spans, Span{Start: r[0], End: r[1], Style: StyleSearch})
	}
	return spans
}

// LayerSpans highlights every layer marker ("L1" … "L5", with or without a
// trailing colon), case-insensitively. Spans are ordered by marker then
// position; bare markers come before their suffixed form so the longer span
// is applied last.
func LayerSpans(text string) []Span {
	keys := make([]string, 0, len(LayerStyles))
	for k := range LayerStyles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var spans []Span
	for _, k := range keys {
		style := LayerStyles[k]
		for _, token := range []string{k, k + ":"} {
			for _, r := range FindAll(text, token) {
				spans = append(spans, Span{Start: r[0], End: r[1], Style: style})
			}
		}
	}
	return spans
}

// Merge flattens highlight passes over a text of length n. Passes are
// applied in order and a later span replaces earlier styling wherever they
// overlap. Spans outside [0, n) are clipped. The result covers [0, n)
// without gaps.
func Merge(n int, passes ...[]Span) []Segment {
	if n <= 0 {
		return nil
	}

	styles := make([]*Style, n)
	for _, pass := range passes {
		for i := range pass {
			sp := pass[i]
			start, end := max(sp.Start, 0), min(sp.End, n)
			st := sp.Style
			for j := start; j < end; j++ {
				styles[j] = &st
			}
		}
	}

	var segs []Segment
	start := 0
	for i := 1; i <= n; i++ {
		if i < n && sameStyle(styles[i], styles[start]) {
			continue
		}
		segs = append(segs, Segment{Start: start, End: i, Style: styles[start]})
		start = i
	}
	return segs
}

func sameStyle(a, b *Style) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Annotate computes the merged segments for a formatted note: search
// highlighting first, layer colours on top.
func Annotate(text, term string) []Segment {
	return Merge(len(text), SearchSpans(text, term), LayerSpans(text))
}
