package dungeons

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/seed/seedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := seedtest.NewDatabase(t, "compass.db", seedtest.Sample())
	gw, err := gateway.New(context.Background(), []string{path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return NewRepository(gw)
}

func glyphs(items []models.Dungeon) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, d.Glyph)
	}
	return out
}

func TestAll_ReturnsEveryRow(t *testing.T) {
	r := setupRepo(t)

	items, err := r.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ABCD1234", "ZXCV5678", "qwer0001", "Apple999"}, glyphs(items))

	assert.Equal(t, models.Dungeon{
		Glyph: "ABCD1234", Category: "Root", Status: "Active",
		Bosses: "Merciless Watchers", Notes: "L1: kill boss L2: loot chest",
	}, items[0])
}

func TestSearchNotes(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"case insensitive", "boss", []string{"ABCD1234", "Apple999"}},
		{"empty term returns all", "", []string{"ABCD1234", "ZXCV5678", "qwer0001", "Apple999"}},
		{"percent is literal", "100%", []string{"qwer0001"}},
		{"underscore is literal", "_", []string{"qwer0001"}},
		{"no match", "nothing here", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := r.SearchNotes(ctx, tt.term)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, glyphs(items))
		})
	}
}

func TestByEquipment_ExactMatch(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	items, err := r.ByEquipment(ctx, "Kirkhammer")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ABCD1234", "ZXCV5678"}, glyphs(items))

	items, err = r.ByEquipment(ctx, "Blood Vial")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = r.ByEquipment(ctx, "kirk")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestByEquipmentLike_Distinct(t *testing.T) {
	r := setupRepo(t)

	// "e" hits Kirkhammer, Evelyn and Saw Cleaver; ABCD1234 links two of them.
	items, err := r.ByEquipmentLike(context.Background(), "e")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"ABCD1234", "ZXCV5678", "qwer0001"}, glyphs(items))
}

func TestGet(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	d, err := r.Get(ctx, "Apple999")
	require.NoError(t, err)
	assert.Equal(t, "Amygdala", d.Bosses)

	_, err = r.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatus_Persists(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.SetStatus(ctx, "ABCD1234", "FLAGGED"))

	d, err := r.Get(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "FLAGGED", d.Status)

	// other rows untouched
	d, err = r.Get(ctx, "qwer0001")
	require.NoError(t, err)
	assert.Equal(t, "Active", d.Status)
}

type fakeQuerier struct {
	rows []gateway.Row
	err  error
}

func (f *fakeQuerier) Query(context.Context, string, ...any) ([]gateway.Row, error) {
	return f.rows, f.err
}

func TestList_Errors(t *testing.T) {
	ctx := context.Background()

	boom := errors.New("boom")
	r := NewRepository(&fakeQuerier{err: boom})
	_, err := r.All(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, r.SetStatus(ctx, "x", "y"), boom)

	r = NewRepository(&fakeQuerier{rows: []gateway.Row{{"only", "three", "cols"}}})
	_, err = r.All(ctx)
	assert.ErrorIs(t, err, ErrBadColumn)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%boss%", likePattern("boss"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\x%`, likePattern(`c:\x`))
}
