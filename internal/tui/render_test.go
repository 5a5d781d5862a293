package tui

import (
	"testing"

	"github.com/dmitrijs2005/chalicecompass/internal/browser"
	"github.com/dmitrijs2005/chalicecompass/internal/notes"
	"github.com/stretchr/testify/assert"
)

func TestDetailMarkup(t *testing.T) {
	tests := []struct {
		name   string
		detail browser.Detail
		want   string
	}{
		{
			name:   "plain text",
			detail: browser.Detail{Text: browser.NoSelection},
			want:   "No item selected or available.",
		},
		{
			name: "layer and search segments",
			detail: browser.Detail{
				Text: "\nL1: kill boss",
				Segments: notes.Merge(len("\nL1: kill boss"),
					notes.SearchSpans("\nL1: kill boss", "boss"),
					notes.LayerSpans("\nL1: kill boss")),
			},
			want: "\n[black:#add8e6]L1:[-:-] kill [black:#ffff00]boss[-:-]",
		},
		{
			name:   "brackets are escaped",
			detail: browser.Detail{Text: "see [red] note"},
			want:   "see [red[] note",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetailMarkup(tt.detail))
		})
	}
}

func TestHeaderLabel(t *testing.T) {
	assert.Equal(t, "Glyph", headerLabel("Glyph", "", false))
	assert.Equal(t, "Glyph ▲", headerLabel("Glyph", "Glyph", false))
	assert.Equal(t, "Glyph ▼", headerLabel("Glyph", "Glyph", true))
	assert.Equal(t, "Notes", headerLabel("Notes", "Glyph", true))
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "L1: a L2: b", cellText("\nL1: a\n  L2: b"))
}
