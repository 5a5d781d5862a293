// Package equipment reads the Equipment reference table that feeds the
// category and item pickers.
package equipment

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
)

type SQLiteRepository struct {
	q Querier
}

func NewRepository(q Querier) *SQLiteRepository {
	return &SQLiteRepository{q: q}
}

func (r *SQLiteRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT Category FROM Equipment`)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	return firstColumn(rows), nil
}

func (r *SQLiteRepository) NamesByCategory(ctx context.Context, category string) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT EquipmentName FROM Equipment WHERE Category = ?`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to select equipment: %w", err)
	}
	return firstColumn(rows), nil
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.Equipment, error) {
	rows, err := r.q.Query(ctx, `SELECT EquipmentName, Category FROM Equipment`)
	if err != nil {
		return nil, fmt.Errorf("failed to select equipment: %w", err)
	}

	result := make([]models.Equipment, 0, len(rows))
	for _, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("unexpected column count: %d", len(row))
		}
		result = append(result, models.Equipment{Name: row[0], Category: row[1]})
	}
	return result, nil
}

func firstColumn(rows []gateway.Row) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if len(row) > 0 {
			out = append(out, row[0])
		}
	}
	return out
}
