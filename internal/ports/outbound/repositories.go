// Package outbound defines the repository interfaces the application layer
// depends on. Implementations live under internal/infrastructure.
package outbound

import (
	"context"
	"io"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/order"
	"github.com/barkeep/v1/internal/domain/recipe"
	"github.com/google/uuid"
)

// ImportReport summarizes a CSV barstock load
type ImportReport struct {
	Imported int
	Skipped  int
}

// BarstockRepository owns Bottle persistence for all bars. Mutations must be
// serialized per bar by the implementation; the engine only ever works on
// immutable snapshots.
type BarstockRepository interface {
	// Snapshot returns an immutable catalog of the bar's bottles in a
	// stable order (category, type, bottle name)
	Snapshot(ctx context.Context, barID int) (*barstock.Catalog, error)

	// Find looks up one bottle by identity
	Find(ctx context.Context, barID int, typ, name string) (*barstock.Bottle, error)

	// Upsert inserts or replaces a bottle, recomputing derived cost fields
	Upsert(ctx context.Context, b *barstock.Bottle) error

	// SetField applies a whitelisted field edit to an existing bottle and
	// returns the updated record
	SetField(ctx context.Context, barID int, typ, name string, field barstock.Field, value string) (*barstock.Bottle, error)

	// ToggleStock flips a bottle's in-stock flag and returns the updated
	// record
	ToggleStock(ctx context.Context, barID int, typ, name string) (*barstock.Bottle, error)

	// Delete removes a bottle; it must no longer appear in any snapshot
	Delete(ctx context.Context, barID int, typ, name string) error

	// ImportCSV loads bottles from a CSV stream. Malformed rows are logged
	// and skipped, not fatal. When replace is true the bar's existing
	// bottles are dropped first.
	ImportCSV(ctx context.Context, barID int, r io.Reader, replace bool) (ImportReport, error)
}

// RecipeRepository supplies recipe definitions from the recipe library.
// Returned recipes are fresh copies; callers own their derived state.
type RecipeRepository interface {
	All(ctx context.Context) ([]*recipe.Recipe, error)
	FindByName(ctx context.Context, name string) (*recipe.Recipe, error)
}

// OrderRepository owns Order persistence
type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	Update(ctx context.Context, o *order.Order) error
	ListByBar(ctx context.Context, barID int) ([]*order.Order, error)
}
