package browser

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/chalicecompass/internal/logging"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/notes"
	"github.com/dmitrijs2005/chalicecompass/internal/services"
	"golang.org/x/text/cases"
)

// NoSelection is the detail text shown when a selection does not resolve to a
// row.
const NoSelection = "No item selected or available."

var ErrUnknownColumn = errors.New("unknown column")

type State int

const (
	StateIdle State = iota
	StatePopulated
	StateDetailShown
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePopulated:
		return "populated"
	case StateDetailShown:
		return "detail"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Detail is the content of the detail pane: formatted note text and the
// highlight segments covering it.
type Detail struct {
	Text     string
	Segments []notes.Segment
}

type Option func(*Browser)

// WithPromote moves rows matching the search term to the top of the list.
func WithPromote(promote bool) Option {
	return func(b *Browser) { b.promote = promote }
}

func WithFormatter(f notes.Formatter) Option {
	return func(b *Browser) { b.formatter = f }
}

func WithLogger(l logging.Logger) Option {
	return func(b *Browser) { b.logger = l }
}

type Browser struct {
	svc       services.DungeonService
	formatter notes.Formatter
	promote   bool
	logger    logging.Logger

	loaded   bool
	rows     []services.ListRow
	term     string
	selected string
	detail   Detail
	shown    bool

	sortCol  string
	sortDesc map[string]bool
}

func New(svc services.DungeonService, opts ...Option) *Browser {
	b := &Browser{
		svc:       svc,
		formatter: notes.DefaultFormatter,
		promote:   true,
		logger:    logging.Nop(),
		sortDesc:  map[string]bool{},
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

func (b *Browser) State() State {
	switch {
	case !b.loaded:
		return StateIdle
	case b.shown:
		return StateDetailShown
	}
	return StatePopulated
}

// Rows returns the visible list in display order.
func (b *Browser) Rows() []services.ListRow { return b.rows }

// Term is the last search term, used for detail highlighting.
func (b *Browser) Term() string { return b.term }

func (b *Browser) Detail() Detail { return b.detail }

// Selected returns the glyph of the selected row, or "".
func (b *Browser) Selected() string { return b.selected }

// SortState reports the last sorted column and whether it is descending.
func (b *Browser) SortState() (string, bool) {
	if b.sortCol == "" {
		return "", false
	}
	return b.sortCol, b.sortDesc[b.sortCol]
}

// Load shows every dungeon without highlighting and forgets the search term.
func (b *Browser) Load(ctx context.Context) error {
	b.term = ""
	return b.reload(ctx)
}

// reload replaces the list with every dungeon. The term is left alone.
func (b *Browser) reload(ctx context.Context) error {
	items, err := b.svc.List(ctx)
	b.resetList()
	if err != nil {
		b.logger.Error(ctx, "failed to load dungeons", "error", err)
		return err
	}

	b.rows = make([]services.ListRow, 0, len(items))
	for _, d := range items {
		b.rows = append(b.rows, services.ListRow{Dungeon: d})
	}
	return nil
}

// Search lists dungeons whose notes contain term.
func (b *Browser) Search(ctx context.Context, term string) error {
	return b.search(ctx, term, b.svc.Search)
}

// SearchEquipment lists dungeons linked to the named equipment.
func (b *Browser) SearchEquipment(ctx context.Context, name string) error {
	return b.search(ctx, name, b.svc.SearchEquipment)
}

// SearchEquipmentLike lists dungeons linked to equipment whose name contains
// term.
func (b *Browser) SearchEquipmentLike(ctx context.Context, term string) error {
	return b.search(ctx, term, b.svc.SearchEquipmentLike)
}

func (b *Browser) search(ctx context.Context, term string, fetch func(context.Context, string) ([]models.Dungeon, error)) error {
	b.term = term
	b.resetList()
	b.detail = Detail{}
	b.shown = false

	items, err := fetch(ctx, term)
	if err != nil {
		b.logger.Error(ctx, "search failed", "term", term, "error", err)
		return err
	}

	b.rows = services.MarkMatches(items, term, b.promote)
	return nil
}

// SortBy orders the list by column. The first sort of a column is ascending
// and each repeat flips the direction. Comparison ignores case and keeps the
// relative order of equal keys.
func (b *Browser) SortBy(column string) error {
	if !knownColumn(column) {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	desc := false
	if d, seen := b.sortDesc[column]; seen {
		desc = !d
	}
	b.sortDesc[column] = desc
	b.sortCol = column

	fold := cases.Fold()
	keys := make(map[string]string, len(b.rows))
	key := func(r services.ListRow) string {
		v := r.Field(column)
		k, ok := keys[v]
		if !ok {
			k = fold.String(v)
			keys[v] = k
		}
		return k
	}

	sort.SliceStable(b.rows, func(i, j int) bool {
		if desc {
			return key(b.rows[j]) < key(b.rows[i])
		}
		return key(b.rows[i]) < key(b.rows[j])
	})
	return nil
}

// Select shows the detail of the row at index. An index outside the list
// clears the selection and shows NoSelection.
func (b *Browser) Select(index int) Detail {
	if index < 0 || index >= len(b.rows) {
		b.selected = ""
		b.detail = Detail{Text: NoSelection}
		b.shown = true
		return b.detail
	}

	row := b.rows[index]
	text := b.formatter.Format(row.Notes)
	b.selected = row.Glyph
	b.detail = Detail{Text: text, Segments: notes.Annotate(text, b.term)}
	b.shown = true
	return b.detail
}

// ToggleStatus flips the status of the selected row and reloads the full
// list. The search term survives so later selections keep highlighting it.
// Without a selection it does nothing.
func (b *Browser) ToggleStatus(ctx context.Context) (string, error) {
	if b.selected == "" {
		return "", nil
	}

	glyph := b.selected
	next, err := b.svc.ToggleStatus(ctx, glyph)
	if err != nil {
		b.logger.Error(ctx, "failed to toggle status", "glyph", glyph, "error", err)
		return "", err
	}
	b.logger.Info(ctx, "status toggled", "glyph", glyph, "status", next)

	detail := b.detail
	if err := b.reload(ctx); err != nil {
		return next, err
	}

	detail.Text += "\nStatus updated to " + next
	b.detail = detail
	return next, nil
}

// Reset clears the term and the detail pane and reloads the unfiltered list.
func (b *Browser) Reset(ctx context.Context) error {
	b.loaded = false
	b.rows = nil
	b.term = ""
	b.selected = ""
	b.detail = Detail{}
	b.shown = false
	return b.Load(ctx)
}

func (b *Browser) resetList() {
	b.rows = nil
	b.selected = ""
	b.sortCol = ""
	b.sortDesc = map[string]bool{}
	b.loaded = true
}

func knownColumn(column string) bool {
	for _, c := range models.Columns {
		if c == column {
			return true
		}
	}
	return false
}
