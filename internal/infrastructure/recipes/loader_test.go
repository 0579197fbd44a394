package recipes

import (
	"context"
	"strings"
	"testing"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const libraryJSON = `[
  {
    "name": "Martini",
    "info": "The classic gin cocktail",
    "style": "Before Dinner Cocktail",
    "glass": "cocktail",
    "prep": "stir",
    "ice": "none",
    "tags": ["core"],
    "variants": ["Dry Martini: less vermouth"],
    "ingredients": [
      {"specifier": "dry gin", "amount": 2.5, "unit": "oz"},
      {"specifier": "dry vermouth", "amount": 0.5, "unit": "oz"},
      {"specifier": "orange bitters", "amount": 2, "unit": "dash"}
    ]
  },
  {
    "name": "House Old Fashioned",
    "ingredients": [
      {"specifier": "bourbon whiskey", "bottle": "Buffalo Trace", "amount": 2, "unit": "oz"},
      {"specifier": "demerara syrup", "amount": 0.25, "unit": "oz"}
    ]
  }
]`

func TestNewLibrary(t *testing.T) {
	lib, err := NewLibrary(strings.NewReader(libraryJSON), zap.NewNop())
	require.NoError(t, err)

	all, err := lib.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	martini := all[0]
	assert.Equal(t, "Martini", martini.Name)
	assert.Equal(t, []string{"core"}, martini.Tags)
	require.Len(t, martini.Ingredients, 3)
	assert.Equal(t, "dry gin", martini.Ingredients[0].Specifier.What)
	assert.Equal(t, 2.5, martini.Ingredients[0].Amount)
	assert.Equal(t, units.Ounce, martini.Ingredients[0].Unit)

	// Pinned bottle survives the round trip
	of := all[1]
	assert.Equal(t, "Buffalo Trace", of.Ingredients[0].Specifier.Bottle)
}

func TestLibraryHandsOutCopies(t *testing.T) {
	lib, err := NewLibrary(strings.NewReader(libraryJSON), zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := lib.FindByName(ctx, "Martini")
	require.NoError(t, err)
	first.CanMake = true
	first.Ingredients[0].Amount = 99

	second, err := lib.FindByName(ctx, "Martini")
	require.NoError(t, err)
	assert.False(t, second.CanMake)
	assert.Equal(t, 2.5, second.Ingredients[0].Amount)
}

func TestFindByNameUnknown(t *testing.T) {
	lib, err := NewLibrary(strings.NewReader(libraryJSON), zap.NewNop())
	require.NoError(t, err)

	_, err = lib.FindByName(context.Background(), "Vesper")
	assert.True(t, errors.Is(err, errors.CodeRecipeNotFound))
}

func TestNewLibraryRejectsBadDefinitions(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{{{`},
		{"missing name", `[{"ingredients": [{"specifier": "gin", "amount": 1, "unit": "oz"}]}]`},
		{"no ingredients", `[{"name": "Empty Glass", "ingredients": []}]`},
		{"zero amount", `[{"name": "Free Pour", "ingredients": [{"specifier": "gin", "amount": 0, "unit": "oz"}]}]`},
		{"duplicate", `[
			{"name": "Martini", "ingredients": [{"specifier": "dry gin", "amount": 2.5, "unit": "oz"}]},
			{"name": "Martini", "ingredients": [{"specifier": "dry gin", "amount": 3, "unit": "oz"}]}
		]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(strings.NewReader(tt.json), zap.NewNop())
			assert.True(t, errors.Is(err, errors.CodeDataImport))
		})
	}
}
