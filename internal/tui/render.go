package tui

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chalicecompass/internal/browser"
	"github.com/dmitrijs2005/chalicecompass/internal/notes"
	"github.com/rivo/tview"
)

// DetailMarkup renders a detail pane as tview colour-tag markup. Styled
// segments get a black foreground on the style's background colour; the
// rest of the text is escaped and left plain.
func DetailMarkup(d browser.Detail) string {
	if len(d.Segments) == 0 {
		return tview.Escape(d.Text)
	}

	var b strings.Builder
	end := 0
	for _, seg := range d.Segments {
		if seg.Start < end || seg.End > len(d.Text) {
			continue
		}
		b.WriteString(tview.Escape(d.Text[end:seg.Start]))
		b.WriteString(segmentMarkup(d.Text[seg.Start:seg.End], seg.Style))
		end = seg.End
	}
	b.WriteString(tview.Escape(d.Text[end:]))
	return b.String()
}

func segmentMarkup(text string, style *notes.Style) string {
	if style == nil {
		return tview.Escape(text)
	}
	return fmt.Sprintf("[black:%s]%s[-:-]", style.Background, tview.Escape(text))
}

// headerLabel is the column title with an arrow on the sorted column.
func headerLabel(column, sorted string, desc bool) string {
	if column != sorted {
		return column
	}
	if desc {
		return column + " ▼"
	}
	return column + " ▲"
}

// cellText flattens a column value onto one table line.
func cellText(v string) string {
	return tview.Escape(strings.Join(strings.Fields(v), " "))
}
