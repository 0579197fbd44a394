// Package recipe contains the core domain model for drink recipes: the
// ingredient specifiers a recipe calls for, and the derived availability,
// cost, and strength state computed against a barstock snapshot.
package recipe

import (
	"strconv"
	"strings"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/pkg/units"
)

// QuantizedIngredient is one line of a recipe: a specifier plus an amount
// in some unit
type QuantizedIngredient struct {
	Specifier barstock.Specifier
	Amount    float64
	Unit      units.Unit
}

// String renders the ingredient line for display
func (q QuantizedIngredient) String() string {
	amount := strconv.FormatFloat(q.Amount, 'f', -1, 64)
	return amount + " " + string(q.Unit) + " " + q.Specifier.String()
}

// Example is one costed bottle combination for a recipe
type Example struct {
	Cost      float64
	ABV       float64
	StdDrinks float64
	Bottles   []string
}

// Stats aggregates cost, strength, and standard-drink figures across every
// example of a recipe
type Stats struct {
	MinCost      float64
	MaxCost      float64
	AvgCost      float64
	MinABV       float64
	MaxABV       float64
	AvgABV       float64
	MinStdDrinks float64
	MaxStdDrinks float64
	AvgStdDrinks float64
}

// Attr returns a named average stat used for menu sorting
func (s *Stats) Attr(name string) (float64, bool) {
	switch name {
	case "cost":
		return s.AvgCost, true
	case "abv":
		return s.AvgABV, true
	case "std_drinks":
		return s.AvgStdDrinks, true
	default:
		return 0, false
	}
}

// Recipe is a drink definition from the recipe library plus derived state
// computed against the active barstock. The derived fields (Examples, Stats,
// CanMake) are invalidated whenever the barstock changes and are only valid
// after a full recomputation.
type Recipe struct {
	Name        string
	Ingredients []QuantizedIngredient
	Variants    []string
	Tags        []string
	Glass       string
	Prep        string
	Style       string
	Ice         string
	Origin      string
	Info        string

	// Derived; owned by the menu engine
	Examples []Example
	Stats    *Stats
	CanMake  bool
}

// HasTag reports whether the recipe carries the given tag
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// ContainsIngredient reports whether any specifier's keyword contains the
// given ingredient keyword (case-insensitive)
func (r *Recipe) ContainsIngredient(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return false
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Specifier.What), keyword) {
			return true
		}
	}
	return false
}

// SearchText returns the free-text haystack for menu search: name, info,
// style, and every ingredient specifier
func (r *Recipe) SearchText() string {
	parts := []string{r.Name, r.Info, r.Style}
	for _, ing := range r.Ingredients {
		parts = append(parts, ing.Specifier.What, ing.Specifier.Bottle)
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Convert rewrites ingredient amounts into the given volume unit for
// display. Non-volume amounts (dashes, pinches) are left alone.
func (r *Recipe) Convert(to units.Unit) error {
	for i := range r.Ingredients {
		ing := &r.Ingredients[i]
		if !units.IsVolume(ing.Unit) || ing.Unit == to {
			continue
		}
		amount, err := units.Convert(ing.Amount, ing.Unit, to)
		if err != nil {
			return err
		}
		ing.Amount = amount
		ing.Unit = to
	}
	return nil
}

// Invalidate clears derived state after a barstock mutation. There is no
// incremental path; the menu engine recomputes from scratch.
func (r *Recipe) Invalidate() {
	r.Examples = nil
	r.Stats = nil
	r.CanMake = false
}

// Clone returns a deep copy so a library's base definitions stay pristine
// while a bar's menu mutates its own derived state.
func (r *Recipe) Clone() *Recipe {
	out := *r
	out.Ingredients = append([]QuantizedIngredient(nil), r.Ingredients...)
	out.Variants = append([]string(nil), r.Variants...)
	out.Tags = append([]string(nil), r.Tags...)
	out.Examples = nil
	out.Stats = nil
	out.CanMake = false
	return &out
}
