package menu

import (
	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/recipe"
)

// Combinations enumerates every way to make a recipe from the catalog: the
// Cartesian product, across the recipe's specifiers in declaration order, of
// each specifier's matching bottles. The product is materialized — catalogs
// run to tens or low hundreds of bottles per specifier, so laziness buys
// nothing — which makes the result trivially restartable and deterministic
// given catalog order.
//
// If any specifier matches zero bottles the product is empty. That is the
// normal "recipe currently un-makeable" state, not an error.
func Combinations(cat *barstock.Catalog, r *recipe.Recipe) [][]barstock.Bottle {
	lists := make([][]barstock.Bottle, len(r.Ingredients))
	total := 1
	for i, ing := range r.Ingredients {
		matches := cat.BottlesMatching(ing.Specifier)
		if len(matches) == 0 {
			return nil
		}
		lists[i] = matches
		total *= len(matches)
	}
	if len(lists) == 0 {
		return nil
	}

	combos := make([][]barstock.Bottle, 0, total)
	pick := make([]barstock.Bottle, len(lists))
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(lists) {
			combos = append(combos, append([]barstock.Bottle(nil), pick...))
			return
		}
		for _, b := range lists[depth] {
			pick[depth] = b
			walk(depth + 1)
		}
	}
	walk(0)
	return combos
}
