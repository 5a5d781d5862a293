package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/notes"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/dungeons"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/equipment"
	"github.com/dmitrijs2005/chalicecompass/internal/seed/seedtest"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) DungeonService {
	t.Helper()
	path := seedtest.NewDatabase(t, "compass.db", seedtest.Sample())
	gw, err := gateway.New(context.Background(), []string{path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = gw.Close() })
	return NewDungeonService(dungeons.NewRepository(gw), equipment.NewRepository(gw), models.DefaultStatusPair())
}

func dungeonGlyphs(items []models.Dungeon) []string {
	out := make([]string, 0, len(items))
	for _, d := range items {
		out = append(out, d.Glyph)
	}
	return out
}

func TestSearch_MatchesNotesSubstringIgnoringCase(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()
	all := seedtest.Sample().Dungeons

	for _, term := range []string{"", "boss", "BOSS", "l1:", "layer", "100%", "_ok", "zzz"} {
		t.Run(term, func(t *testing.T) {
			want := []string{}
			for _, d := range all {
				if strings.Contains(strings.ToLower(d.Notes), strings.ToLower(term)) {
					want = append(want, d.Glyph)
				}
			}

			got, err := svc.Search(ctx, term)
			require.NoError(t, err)
			assert.ElementsMatch(t, want, dungeonGlyphs(got))
		})
	}
}

func TestSearchEquipment(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	got, err := svc.SearchEquipment(ctx, "Evelyn")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABCD1234"}, dungeonGlyphs(got))

	got, err = svc.SearchEquipmentLike(ctx, "cleav")
	require.NoError(t, err)
	assert.Equal(t, []string{"qwer0001"}, dungeonGlyphs(got))
}

func TestToggleStatus_TwiceRestores(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, glyph := range []string{"ABCD1234", "ZXCV5678"} {
		before := statusOf(t, svc, glyph)

		first, err := svc.ToggleStatus(ctx, glyph)
		require.NoError(t, err)
		assert.NotEqual(t, before, first)
		assert.Equal(t, first, statusOf(t, svc, glyph))

		second, err := svc.ToggleStatus(ctx, glyph)
		require.NoError(t, err)
		assert.Equal(t, before, second)
		assert.Equal(t, before, statusOf(t, svc, glyph))
	}
}

func TestToggleStatus_Errors(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	_, err := svc.ToggleStatus(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyGlyph)

	_, err = svc.ToggleStatus(ctx, "missing")
	assert.ErrorIs(t, err, dungeons.ErrNotFound)
}

func TestGet(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	d, err := svc.Get(ctx, "qwer0001")
	require.NoError(t, err)
	assert.Equal(t, "Abhorrent Beast", d.Bosses)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyGlyph)
	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, dungeons.ErrNotFound)
}

func TestCategoriesAndItems(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Weapon", "Firearm", "Consumable"}, cats)

	items, err := svc.Items(ctx, "Firearm")
	require.NoError(t, err)
	assert.Equal(t, []string{"Evelyn"}, items)
}

// Worked example: formatting, search hit and a status round trip on one row.
func TestWorkedExample(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	got, err := svc.Search(ctx, "boss")
	require.NoError(t, err)
	require.Contains(t, dungeonGlyphs(got), "ABCD1234")

	var row models.Dungeon
	for _, d := range got {
		if d.Glyph == "ABCD1234" {
			row = d
		}
	}
	assert.Equal(t, "\nL1: kill boss \nL2: loot chest", notes.Format(row.Notes))

	_, err = svc.ToggleStatus(ctx, "ABCD1234")
	require.NoError(t, err)
	_, err = svc.ToggleStatus(ctx, "ABCD1234")
	require.NoError(t, err)
	assert.Equal(t, "Active", statusOf(t, svc, "ABCD1234"))
}

func statusOf(t *testing.T, svc DungeonService, glyph string) string {
	t.Helper()
	all, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, d := range all {
		if d.Glyph == glyph {
			return d.Status
		}
	}
	t.Fatalf("glyph %s not listed", glyph)
	return ""
}

type failingDungeons struct {
	dungeons.Repository
	err error
}

func (f failingDungeons) All(context.Context) ([]models.Dungeon, error) { return nil, f.err }

type failingEquipment struct {
	equipment.Repository
	err error
}

func (f failingEquipment) Categories(context.Context) ([]string, error) { return nil, f.err }

func TestErrorsWrapped(t *testing.T) {
	boom := errors.New("boom")
	svc := NewDungeonService(failingDungeons{err: boom}, failingEquipment{err: boom}, models.DefaultStatusPair())

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.Categories(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestMarkMatches(t *testing.T) {
	rows := seedtest.Sample().Dungeons

	flags := func(out []ListRow) map[string]bool {
		m := map[string]bool{}
		for _, r := range out {
			m[r.Glyph] = r.Highlight
		}
		return m
	}
	order := func(out []ListRow) []string {
		s := make([]string, 0, len(out))
		for _, r := range out {
			s = append(s, r.Glyph)
		}
		return s
	}

	t.Run("empty term matches all", func(t *testing.T) {
		out := MarkMatches(rows, "", true)
		for _, r := range out {
			assert.True(t, r.Highlight, r.Glyph)
		}
		assert.Equal(t, []string{"ABCD1234", "ZXCV5678", "qwer0001", "Apple999"}, order(out))
	})

	t.Run("matches any column ignoring case", func(t *testing.T) {
		// "beast" appears only in Bosses.
		out := MarkMatches(rows, "BEAST", false)
		want := map[string]bool{"ABCD1234": false, "ZXCV5678": true, "qwer0001": true, "Apple999": false}
		if diff := cmp.Diff(want, flags(out)); diff != "" {
			t.Errorf("flags mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"ABCD1234", "ZXCV5678", "qwer0001", "Apple999"}, order(out))
	})

	t.Run("promote is stable", func(t *testing.T) {
		out := MarkMatches(rows, "apple", true)
		assert.Equal(t, []string{"qwer0001", "Apple999", "ABCD1234", "ZXCV5678"}, order(out))
		assert.True(t, out[0].Highlight)
		assert.True(t, out[1].Highlight)
		assert.False(t, out[2].Highlight)
	})

	t.Run("term may span adjacent columns", func(t *testing.T) {
		out := MarkMatches(rows, "root active", false)
		want := map[string]bool{"ABCD1234": true, "ZXCV5678": false, "qwer0001": true, "Apple999": false}
		if diff := cmp.Diff(want, flags(out)); diff != "" {
			t.Errorf("flags mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil rows", func(t *testing.T) {
		assert.Empty(t, MarkMatches(nil, "x", true))
	})
}
