package recipe

import (
	"testing"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func martini() *Recipe {
	return &Recipe{
		Name: "Martini",
		Ingredients: []QuantizedIngredient{
			{Specifier: barstock.Specifier{What: "dry gin"}, Amount: 2.5, Unit: units.Ounce},
			{Specifier: barstock.Specifier{What: "dry vermouth"}, Amount: 0.5, Unit: units.Ounce},
			{Specifier: barstock.Specifier{What: "orange bitters"}, Amount: 2, Unit: units.Unit("dash")},
		},
		Tags:  []string{"core", "stirred"},
		Glass: "martini",
		Info:  "The king of cocktails",
	}
}

func TestHasTag(t *testing.T) {
	r := martini()
	assert.True(t, r.HasTag("core"))
	assert.True(t, r.HasTag("Core"))
	assert.False(t, r.HasTag("tiki"))
}

func TestContainsIngredient(t *testing.T) {
	r := martini()
	assert.True(t, r.ContainsIngredient("gin"))
	assert.True(t, r.ContainsIngredient("vermouth"))
	assert.False(t, r.ContainsIngredient("rum"))
	assert.False(t, r.ContainsIngredient(""))
}

func TestSearchText(t *testing.T) {
	r := martini()
	text := r.SearchText()
	assert.Contains(t, text, "martini")
	assert.Contains(t, text, "king of cocktails")
	assert.Contains(t, text, "dry vermouth")
}

func TestConvert(t *testing.T) {
	r := martini()
	require.NoError(t, r.Convert(units.Milliliter))

	assert.InDelta(t, 2.5*units.MLPerOz, r.Ingredients[0].Amount, 1e-6)
	assert.Equal(t, units.Milliliter, r.Ingredients[0].Unit)

	// dashes are not volumes and stay untouched
	assert.InDelta(t, 2.0, r.Ingredients[2].Amount, 1e-9)
	assert.Equal(t, units.Unit("dash"), r.Ingredients[2].Unit)
}

func TestInvalidate(t *testing.T) {
	r := martini()
	r.Examples = []Example{{Cost: 3.5}}
	r.Stats = &Stats{AvgCost: 3.5}
	r.CanMake = true

	r.Invalidate()

	assert.Nil(t, r.Examples)
	assert.Nil(t, r.Stats)
	assert.False(t, r.CanMake)
}

func TestCloneIsDeep(t *testing.T) {
	r := martini()
	r.CanMake = true
	r.Stats = &Stats{AvgCost: 3}

	c := r.Clone()
	c.Ingredients[0].Amount = 99
	c.Tags[0] = "changed"

	assert.InDelta(t, 2.5, r.Ingredients[0].Amount, 1e-9)
	assert.Equal(t, "core", r.Tags[0])

	// derived state never travels with a clone
	assert.False(t, c.CanMake)
	assert.Nil(t, c.Stats)
}

func TestStatsAttr(t *testing.T) {
	s := &Stats{AvgCost: 3.2, AvgABV: 28.4, AvgStdDrinks: 1.8}

	v, ok := s.Attr("cost")
	assert.True(t, ok)
	assert.InDelta(t, 3.2, v, 1e-9)

	v, ok = s.Attr("abv")
	assert.True(t, ok)
	assert.InDelta(t, 28.4, v, 1e-9)

	_, ok = s.Attr("glass")
	assert.False(t, ok)
}
