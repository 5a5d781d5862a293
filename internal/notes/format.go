// Package notes formats dungeon notes for display and computes the highlight
// annotations drawn over them.
//
// Formatting is a pure substring operation: a line break is inserted before
// every position where a layer marker starts, whether or not the marker sits
// inside a longer word. Formatting is not idempotent.
//
// Highlighting is expressed as Spans over byte offsets. Each highlight pass
// produces its own spans; Merge resolves overlaps by letting later passes win
// and returns the flat list of Segments a renderer walks.
package notes

import "strings"

// DefaultTokens are the markers that start a new line in formatted notes.
var DefaultTokens = []string{
	"L1", "L1:", "L2", "L2:", "L3", "L3:", "L4", "L4:", "L5", "L5:",
	"layer", "Layer",
}

// Formatter breaks notes before marker tokens.
type Formatter struct {
	Tokens []string
}

// DefaultFormatter uses DefaultTokens.
var DefaultFormatter = Formatter{Tokens: DefaultTokens}

// Format inserts one "\n" before every position at which any token starts.
// Tokens sharing a start position ("L1" and "L1:") produce a single break.
func (f Formatter) Format(note string) string {
	if note == "" || len(f.Tokens) == 0 {
		return note
	}

	var b strings.Builder
	b.Grow(len(note) + 8)
	for i := 0; i < len(note); i++ {
		if f.startsToken(note[i:]) {
			b.WriteByte('\n')
		}
		b.WriteByte(note[i])
	}
	return b.String()
}

func (f Formatter) startsToken(s string) bool {
	for _, t := range f.Tokens {
		if t != "" && strings.HasPrefix(s, t) {
			return true
		}
	}
	return false
}

// Format formats note with DefaultFormatter.
func Format(note string) string {
	return DefaultFormatter.Format(note)
}
