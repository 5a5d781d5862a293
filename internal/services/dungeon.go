// Package services holds the search, filter and status logic sitting between
// the browser model and the repositories.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/dungeons"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/equipment"
	"golang.org/x/text/cases"
)

var ErrEmptyGlyph = errors.New("glyph is empty")

// ListRow is a dungeon as shown in the list, with its match flag.
type ListRow struct {
	models.Dungeon
	Highlight bool
}

type DungeonService interface {
	List(ctx context.Context) ([]models.Dungeon, error)
	Search(ctx context.Context, term string) ([]models.Dungeon, error)
	SearchEquipment(ctx context.Context, name string) ([]models.Dungeon, error)
	SearchEquipmentLike(ctx context.Context, term string) ([]models.Dungeon, error)
	Get(ctx context.Context, glyph string) (*models.Dungeon, error)
	ToggleStatus(ctx context.Context, glyph string) (string, error)
	Categories(ctx context.Context) ([]string, error)
	Items(ctx context.Context, category string) ([]string, error)
}

type dungeonService struct {
	dungeonRepo   dungeons.Repository
	equipmentRepo equipment.Repository
	statuses      models.StatusPair
}

func NewDungeonService(dungeonRepo dungeons.Repository, equipmentRepo equipment.Repository, statuses models.StatusPair) DungeonService {
	return &dungeonService{dungeonRepo: dungeonRepo, equipmentRepo: equipmentRepo, statuses: statuses}
}

func (s *dungeonService) List(ctx context.Context) ([]models.Dungeon, error) {
	items, err := s.dungeonRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading dungeons: %w", err)
	}
	return items, nil
}

func (s *dungeonService) Search(ctx context.Context, term string) ([]models.Dungeon, error) {
	items, err := s.dungeonRepo.SearchNotes(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error searching notes: %w", err)
	}
	return items, nil
}

func (s *dungeonService) SearchEquipment(ctx context.Context, name string) ([]models.Dungeon, error) {
	items, err := s.dungeonRepo.ByEquipment(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching equipment: %w", err)
	}
	return items, nil
}

func (s *dungeonService) SearchEquipmentLike(ctx context.Context, term string) ([]models.Dungeon, error) {
	items, err := s.dungeonRepo.ByEquipmentLike(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("error searching equipment: %w", err)
	}
	return items, nil
}

func (s *dungeonService) Get(ctx context.Context, glyph string) (*models.Dungeon, error) {
	if glyph == "" {
		return nil, ErrEmptyGlyph
	}
	d, err := s.dungeonRepo.Get(ctx, glyph)
	if err != nil {
		return nil, fmt.Errorf("error loading dungeon: %w", err)
	}
	return d, nil
}

// ToggleStatus flips the stored status of glyph within the configured pair
// and returns the new value.
func (s *dungeonService) ToggleStatus(ctx context.Context, glyph string) (string, error) {
	if glyph == "" {
		return "", ErrEmptyGlyph
	}

	d, err := s.dungeonRepo.Get(ctx, glyph)
	if err != nil {
		return "", fmt.Errorf("error loading dungeon: %w", err)
	}

	next := s.statuses.Toggle(d.Status)
	if err := s.dungeonRepo.SetStatus(ctx, glyph, next); err != nil {
		return "", fmt.Errorf("error saving status: %w", err)
	}
	return next, nil
}

func (s *dungeonService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.equipmentRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading categories: %w", err)
	}
	return cats, nil
}

func (s *dungeonService) Items(ctx context.Context, category string) ([]string, error) {
	names, err := s.equipmentRepo.NamesByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error loading equipment: %w", err)
	}
	return names, nil
}

// MarkMatches flags every row whose joined column text contains term,
// ignoring case. Columns are joined with a single space, so a term such as
// "Root Active" can match across a column boundary. An empty term flags
// every row. With promote set the flagged
// rows are moved ahead of the others, keeping relative order in both groups.
func MarkMatches(rows []models.Dungeon, term string, promote bool) []ListRow {
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]ListRow, 0, len(rows))
	for _, d := range rows {
		hit := strings.Contains(fold.String(d.Text()), needle)
		out = append(out, ListRow{Dungeon: d, Highlight: hit})
	}
	if !promote {
		return out
	}

	promoted := make([]ListRow, 0, len(out))
	for _, r := range out {
		if r.Highlight {
			promoted = append(promoted, r)
		}
	}
	for _, r := range out {
		if !r.Highlight {
			promoted = append(promoted, r)
		}
	}
	return promoted
}
