package equipment

import (
	"context"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
)

// Querier executes one statement and returns its rows.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]gateway.Row, error)
}

// Repository reads the Equipment reference table.
type Repository interface {
	// Categories returns the distinct equipment categories.
	Categories(ctx context.Context) ([]string, error)

	// NamesByCategory returns the equipment names in one category.
	NamesByCategory(ctx context.Context, category string) ([]string, error)

	// All returns every piece of equipment.
	All(ctx context.Context) ([]models.Equipment, error)
}
