package dungeons

import (
	"context"

	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
)

// Querier executes one statement and returns its rows. *gateway.Gateway
// satisfies it.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]gateway.Row, error)
}

// Repository describes the queries the application runs against Dungeon.
type Repository interface {
	// All returns every dungeon in storage order.
	All(ctx context.Context) ([]models.Dungeon, error)

	// SearchNotes returns dungeons whose notes contain term as a
	// case-insensitive substring. An empty term returns every dungeon.
	SearchNotes(ctx context.Context, term string) ([]models.Dungeon, error)

	// ByEquipment returns dungeons linked to the named equipment (exact match).
	ByEquipment(ctx context.Context, name string) ([]models.Dungeon, error)

	// ByEquipmentLike returns dungeons linked to any equipment whose name
	// contains term, each dungeon once.
	ByEquipmentLike(ctx context.Context, term string) ([]models.Dungeon, error)

	// Get returns a single dungeon by glyph.
	Get(ctx context.Context, glyph string) (*models.Dungeon, error)

	// SetStatus overwrites the status of one dungeon.
	SetStatus(ctx context.Context, glyph, status string) error
}
