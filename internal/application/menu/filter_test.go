package menu

import (
	"testing"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/recipe"
	"github.com/barkeep/v1/pkg/units"
	"github.com/stretchr/testify/assert"
)

func menuRecipe(name string, canMake bool, avgCost float64, whats ...string) *recipe.Recipe {
	r := &recipe.Recipe{Name: name, CanMake: canMake}
	for _, what := range whats {
		r.Ingredients = append(r.Ingredients, recipe.QuantizedIngredient{
			Specifier: barstock.Specifier{What: what},
			Amount:    1,
			Unit:      units.Ounce,
		})
	}
	if canMake {
		r.Stats = &recipe.Stats{AvgCost: avgCost}
	}
	return r
}

func names(recipes []*recipe.Recipe) []string {
	out := make([]string, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.Name)
	}
	return out
}

func fixtureMenu() []*recipe.Recipe {
	martini := menuRecipe("Martini", true, 2.2, "dry gin", "dry vermouth", "orange bitters")
	martini.Tags = []string{"core", "stirred"}
	martini.Style = "Before Dinner Cocktail"
	martini.Glass = "cocktail"

	daiquiri := menuRecipe("Daiquiri", true, 1.6, "white rum", "lime juice", "simple syrup")
	daiquiri.Tags = []string{"core", "shaken"}
	daiquiri.Style = "All Day Cocktail"
	daiquiri.Glass = "cocktail"

	negroni := menuRecipe("Negroni", false, 0, "dry gin", "campari", "sweet vermouth")
	negroni.Style = "Before Dinner Cocktail"
	negroni.Glass = "rocks"

	sazerac := menuRecipe("Sazerac", true, 3.1, "rye whiskey", "peychaud's bitters", "demerara syrup")
	sazerac.Info = "New Orleans classic"
	sazerac.Glass = "rocks"

	return []*recipe.Recipe{martini, daiquiri, negroni, sazerac}
}

func TestFilter_StockGate(t *testing.T) {
	included, excluded := Filter(fixtureMenu(), FilterOptions{})

	assert.ElementsMatch(t, []string{"Martini", "Daiquiri", "Sazerac"}, names(included))
	assert.Equal(t, []string{"Negroni"}, names(excluded))
}

func TestFilter_AllKeepsUnmakeable(t *testing.T) {
	included, excluded := Filter(fixtureMenu(), FilterOptions{All: true})

	assert.Len(t, included, 4)
	assert.Empty(t, excluded)
}

func TestFilter_Name(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{Name: "mart"})
	assert.Equal(t, []string{"Martini"}, names(included))
}

func TestFilter_TagAndGlass(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{Tag: "CORE"})
	assert.ElementsMatch(t, []string{"Martini", "Daiquiri"}, names(included))

	included, _ = Filter(fixtureMenu(), FilterOptions{Glass: "rocks"})
	assert.Equal(t, []string{"Sazerac"}, names(included), "Negroni is out of stock")
}

func TestFilter_IncludeAllOf(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{Include: "gin, vermouth"})
	assert.Equal(t, []string{"Martini"}, names(included))
}

func TestFilter_IncludeAnyOf(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{
		Include:      "gin, rum",
		IncludeUseOr: true,
	})
	assert.ElementsMatch(t, []string{"Martini", "Daiquiri"}, names(included))
}

func TestFilter_Exclude(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{
		Exclude:      "bitters",
		ExcludeUseOr: true,
	})
	assert.Equal(t, []string{"Daiquiri"}, names(included))
}

func TestFilter_SearchWidensOtherFilters(t *testing.T) {
	// Tag alone matches Martini and Daiquiri; the search text pulls in
	// Sazerac via its info line even though it lacks the tag
	included, _ := Filter(fixtureMenu(), FilterOptions{
		Tag:    "core",
		Search: "new orleans",
	})
	assert.ElementsMatch(t, []string{"Martini", "Daiquiri", "Sazerac"}, names(included))
}

func TestFilter_SearchMatchesIngredients(t *testing.T) {
	included, _ := Filter(fixtureMenu(), FilterOptions{Search: "rye"})
	assert.Equal(t, []string{"Sazerac"}, names(included))
}

func TestSortByStat(t *testing.T) {
	menu := fixtureMenu()

	asc := SortByStat(menu, "cost")
	assert.Equal(t, []string{"Daiquiri", "Martini", "Sazerac", "Negroni"}, names(asc),
		"ascending with nil-stats recipes last")

	desc := SortByStat(menu, "costX")
	assert.Equal(t, []string{"Sazerac", "Martini", "Daiquiri", "Negroni"}, names(desc),
		"trailing X reverses, nil-stats recipes still last")

	// Input order untouched
	assert.Equal(t, []string{"Martini", "Daiquiri", "Negroni", "Sazerac"}, names(menu))
}

func TestSortByStat_UnknownKeyKeepsOrder(t *testing.T) {
	menu := fixtureMenu()
	out := SortByStat(menu, "glassware")
	assert.Equal(t, names(menu), names(out))
}
