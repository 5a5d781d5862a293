package dungeons

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
)

var (
	ErrNotFound  = errors.New("dungeon not found")
	ErrBadColumn = errors.New("unexpected column count")
)

const selectDungeon = `SELECT Glyph, Category, Status, Bosses, Notes FROM Dungeon`

// SQLiteRepository implements Repository on top of a Querier.
type SQLiteRepository struct {
	q Querier
}

// NewRepository returns a SQLiteRepository bound to q.
func NewRepository(q Querier) *SQLiteRepository {
	return &SQLiteRepository{q: q}
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.Dungeon, error) {
	return r.list(ctx, selectDungeon)
}

func (r *SQLiteRepository) SearchNotes(ctx context.Context, term string) ([]models.Dungeon, error) {
	if term == "" {
		return r.All(ctx)
	}
	return r.list(ctx, selectDungeon+` WHERE Notes LIKE ? ESCAPE '\'`, likePattern(term))
}

func (r *SQLiteRepository) ByEquipment(ctx context.Context, name string) ([]models.Dungeon, error) {
	query := `
		SELECT Dungeon.Glyph, Dungeon.Category, Dungeon.Status, Dungeon.Bosses, Dungeon.Notes
		FROM Dungeon
		JOIN Dungeon_Equipment ON Dungeon.Glyph = Dungeon_Equipment.Glyph
		WHERE Dungeon_Equipment.EquipmentName = ?`
	return r.list(ctx, query, name)
}

func (r *SQLiteRepository) ByEquipmentLike(ctx context.Context, term string) ([]models.Dungeon, error) {
	query := `
		SELECT DISTINCT Dungeon.Glyph, Dungeon.Category, Dungeon.Status, Dungeon.Bosses, Dungeon.Notes
		FROM Dungeon
		JOIN Dungeon_Equipment ON Dungeon.Glyph = Dungeon_Equipment.Glyph
		WHERE Dungeon_Equipment.EquipmentName LIKE ? ESCAPE '\'`
	return r.list(ctx, query, likePattern(term))
}

func (r *SQLiteRepository) Get(ctx context.Context, glyph string) (*models.Dungeon, error) {
	items, err := r.list(ctx, selectDungeon+` WHERE Glyph = ?`, glyph)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, glyph)
	}
	return &items[0], nil
}

func (r *SQLiteRepository) SetStatus(ctx context.Context, glyph, status string) error {
	_, err := r.q.Query(ctx, `UPDATE Dungeon SET Status = ? WHERE Glyph = ?`, status, glyph)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Dungeon, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select dungeons: %w", err)
	}

	result := make([]models.Dungeon, 0, len(rows))
	for _, row := range rows {
		d, err := scanDungeon(row)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func scanDungeon(row gateway.Row) (models.Dungeon, error) {
	if len(row) != 5 {
		return models.Dungeon{}, fmt.Errorf("%w: %d", ErrBadColumn, len(row))
	}
	return models.Dungeon{
		Glyph:    row[0],
		Category: row[1],
		Status:   row[2],
		Bosses:   row[3],
		Notes:    row[4],
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring LIKE match with wildcards escaped.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
