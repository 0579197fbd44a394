package menu

import (
	"math"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/recipe"
	"github.com/barkeep/v1/pkg/units"
)

// MarkupModel selects how ingredient cost becomes a displayed price
type MarkupModel string

const (
	MarkupMultiplicative MarkupModel = "multiplicative"
	MarkupAdditive       MarkupModel = "additive"
)

// Valid reports whether the model is a recognized configuration value
func (m MarkupModel) Valid() bool {
	return m == MarkupMultiplicative || m == MarkupAdditive
}

// Price is the one canonical cost-to-price path; every display surface must
// go through it rather than reapplying its own formula.
func Price(cost, markup float64, model MarkupModel) int {
	switch model {
	case MarkupAdditive:
		return int(math.Ceil(cost + markup))
	default:
		return int(math.Ceil((cost+1)*markup + 1))
	}
}

// ComputeExample costs a single bottle combination: total ingredient cost,
// volume-weighted ABV, and standard-drink count. Non-volume amounts (dashes,
// pinches) contribute neither cost nor volume.
func ComputeExample(cat *barstock.Catalog, r *recipe.Recipe, combo []barstock.Bottle) (recipe.Example, error) {
	var (
		cost      float64
		volumeOz  float64
		alcoholOz float64
		bottles   []string
	)
	for i, ing := range r.Ingredients {
		b := combo[i]
		bottles = append(bottles, b.Name)
		if !units.IsVolume(ing.Unit) {
			continue
		}
		c, err := cat.Cost(b, ing.Amount, ing.Unit)
		if err != nil {
			return recipe.Example{}, err
		}
		cost += c

		oz, err := units.Convert(ing.Amount, ing.Unit, units.Ounce)
		if err != nil {
			return recipe.Example{}, err
		}
		volumeOz += oz
		alcoholOz += oz * b.ABV / 100
	}

	var abv float64
	if volumeOz > 0 {
		abv = alcoholOz / volumeOz * 100
	}
	return recipe.Example{
		Cost:      cost,
		ABV:       abv,
		StdDrinks: alcoholOz / units.StandardDrinkOz,
		Bottles:   bottles,
	}, nil
}

// ComputeExamples enumerates and costs every bottle combination of a recipe
func ComputeExamples(cat *barstock.Catalog, r *recipe.Recipe) ([]recipe.Example, error) {
	combos := Combinations(cat, r)
	if len(combos) == 0 {
		return nil, nil
	}
	examples := make([]recipe.Example, 0, len(combos))
	for _, combo := range combos {
		ex, err := ComputeExample(cat, r, combo)
		if err != nil {
			return nil, err
		}
		examples = append(examples, ex)
	}
	return examples, nil
}

// AggregateStats reduces a recipe's examples to min/max/avg figures.
// Zero examples means undefined stats: nil, not zeros.
func AggregateStats(examples []recipe.Example) *recipe.Stats {
	if len(examples) == 0 {
		return nil
	}
	s := &recipe.Stats{
		MinCost:      examples[0].Cost,
		MaxCost:      examples[0].Cost,
		MinABV:       examples[0].ABV,
		MaxABV:       examples[0].ABV,
		MinStdDrinks: examples[0].StdDrinks,
		MaxStdDrinks: examples[0].StdDrinks,
	}
	var sumCost, sumABV, sumStd float64
	for _, ex := range examples {
		s.MinCost = math.Min(s.MinCost, ex.Cost)
		s.MaxCost = math.Max(s.MaxCost, ex.Cost)
		s.MinABV = math.Min(s.MinABV, ex.ABV)
		s.MaxABV = math.Max(s.MaxABV, ex.ABV)
		s.MinStdDrinks = math.Min(s.MinStdDrinks, ex.StdDrinks)
		s.MaxStdDrinks = math.Max(s.MaxStdDrinks, ex.StdDrinks)
		sumCost += ex.Cost
		sumABV += ex.ABV
		sumStd += ex.StdDrinks
	}
	n := float64(len(examples))
	s.AvgCost = sumCost / n
	s.AvgABV = sumABV / n
	s.AvgStdDrinks = sumStd / n
	return s
}

// Resolve recomputes a recipe's derived state against a catalog snapshot
func Resolve(cat *barstock.Catalog, r *recipe.Recipe) error {
	r.Invalidate()
	examples, err := ComputeExamples(cat, r)
	if err != nil {
		return err
	}
	r.Examples = examples
	r.Stats = AggregateStats(examples)
	r.CanMake = len(examples) > 0
	return nil
}
