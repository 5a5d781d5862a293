package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/chalicecompass/internal/browser"
	"github.com/dmitrijs2005/chalicecompass/internal/notes"
	"github.com/dmitrijs2005/chalicecompass/internal/services"
)

const emptyList = "No dungeons found."

// writeTable prints rows as an aligned table. Rows matching the last search
// carry a "*" after their number.
func writeTable(w io.Writer, rows []services.ListRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, emptyList)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tGLYPH\tCATEGORY\tSTATUS\tBOSSES\tNOTES")
	for i, r := range rows {
		n := strconv.Itoa(i + 1)
		if r.Highlight {
			n += "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", n, flat(r.Glyph), flat(r.Category), flat(r.Status), flat(r.Bosses), flat(r.Notes))
	}
	return tw.Flush()
}

func writeList(w io.Writer, items []string) {
	if len(items) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, it := range items {
		fmt.Fprintln(w, it)
	}
}

func flat(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// noteDetail formats a note with layer colours and no search term.
func noteDetail(note string) browser.Detail {
	text := notes.Format(note)
	return browser.Detail{Text: text, Segments: notes.Annotate(text, "")}
}

// detailStyles turns highlight segments into lipgloss styles. The renderer
// decides the colour profile, so output to a pipe stays plain.
type detailStyles struct {
	r     *lipgloss.Renderer
	cache map[notes.Style]lipgloss.Style
}

func newDetailStyles(r *lipgloss.Renderer) detailStyles {
	return detailStyles{r: r, cache: map[notes.Style]lipgloss.Style{}}
}

func (s detailStyles) style(st notes.Style) lipgloss.Style {
	if ls, ok := s.cache[st]; ok {
		return ls
	}
	ls := s.r.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(st.Background))
	s.cache[st] = ls
	return ls
}

func (s detailStyles) write(w io.Writer, d browser.Detail) {
	var b strings.Builder
	end := 0
	for _, seg := range d.Segments {
		if seg.Start < end || seg.End > len(d.Text) {
			continue
		}
		b.WriteString(d.Text[end:seg.Start])
		text := d.Text[seg.Start:seg.End]
		if seg.Style == nil {
			b.WriteString(text)
		} else {
			b.WriteString(s.style(*seg.Style).Render(text))
		}
		end = seg.End
	}
	b.WriteString(d.Text[end:])
	fmt.Fprintln(w, b.String())
}
