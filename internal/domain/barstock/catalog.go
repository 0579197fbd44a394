package barstock

import (
	"fmt"
	"strings"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
)

// Specifier is an abstract ingredient request: an ingredient-class keyword
// such as "gin", "any spirit", or "bitters", optionally pinned to an exact
// bottle. Immutable value.
type Specifier struct {
	What   string
	Bottle string
}

// String implements fmt.Stringer
func (s Specifier) String() string {
	if s.Bottle != "" {
		return fmt.Sprintf("%s (%s)", s.What, s.Bottle)
	}
	return s.What
}

// substringTypes are matched by containment on the normalized type string
// rather than equality, so "rum" covers "amber rum", "dark rum", and so on.
// "whisky" is folded to "whisk" to cover both the whiskey and whisky
// spellings.
var substringTypes = map[string]string{
	"rum":      "rum",
	"whiskey":  "whiskey",
	"whisky":   "whisk",
	"tequila":  "tequila",
	"vermouth": "vermouth",
}

// anySpirits is the closed enumeration behind the "any spirit" keyword.
// Membership match, not substring.
var anySpirits = map[string]bool{
	"dry gin":         true,
	"rye whiskey":     true,
	"bourbon whiskey": true,
	"amber rum":       true,
	"dark rum":        true,
	"white rum":       true,
	"genever":         true,
	"cognac":          true,
	"brandy":          true,
	"aquavit":         true,
}

// Catalog is an immutable in-memory snapshot of one bar's bottles. All
// queries are side-effect-free; mutations go through the persistence layer,
// which produces a fresh snapshot.
type Catalog struct {
	barID   int
	bottles []Bottle
}

// NewCatalog builds a snapshot over the given bottles, preserving their
// order so combination enumeration stays deterministic.
func NewCatalog(barID int, bottles []Bottle) *Catalog {
	return &Catalog{barID: barID, bottles: bottles}
}

// BarID returns the bar this snapshot belongs to
func (c *Catalog) BarID() int {
	return c.barID
}

// Bottles returns every bottle in the snapshot, in catalog order
func (c *Catalog) Bottles() []Bottle {
	return c.bottles
}

// BottlesMatching returns the in-stock bottles satisfying a specifier, in
// catalog order. Out-of-stock bottles and other bars' bottles are invisible
// regardless of the query. An empty result is a normal state.
func (c *Catalog) BottlesMatching(spec Specifier) []Bottle {
	what := strings.ToLower(spec.What)

	var match func(b *Bottle) bool
	if substr, ok := substringTypes[what]; ok {
		match = func(b *Bottle) bool {
			return strings.Contains(b.NormalizedType(), substr)
		}
	} else if what == "any spirit" {
		match = func(b *Bottle) bool {
			return anySpirits[b.NormalizedType()]
		}
	} else if what == "bitters" {
		// Bitters types are too varied to enumerate; match on category
		match = func(b *Bottle) bool {
			return b.Category == CategoryBitters
		}
	} else {
		match = func(b *Bottle) bool {
			return b.NormalizedType() == what
		}
	}

	var result []Bottle
	for i := range c.bottles {
		b := &c.bottles[i]
		if b.BarID != c.barID || !b.InStock {
			continue
		}
		if !match(b) {
			continue
		}
		if spec.Bottle != "" && b.Name != spec.Bottle {
			continue
		}
		result = append(result, *b)
	}
	return result
}

// Bottle resolves a specifier expected to identify exactly one bottle.
// Zero matches is NO_MATCH, more than one is AMBIGUOUS_MATCH.
func (c *Catalog) Bottle(spec Specifier) (Bottle, error) {
	matches := c.BottlesMatching(spec)
	switch len(matches) {
	case 0:
		return Bottle{}, errors.NewNoMatchError(spec.String())
	case 1:
		return matches[0], nil
	default:
		return Bottle{}, errors.NewAmbiguousMatchError(spec.String(), len(matches))
	}
}

// BottleField resolves a specifier to a single bottle and returns the named
// field's value
func (c *Catalog) BottleField(spec Specifier, field Field) (string, error) {
	b, err := c.Bottle(spec)
	if err != nil {
		return "", err
	}
	return b.Get(field)
}

// Cost returns the cost of pouring the given amount of a bottle, in the
// given volume unit
func (c *Catalog) Cost(b Bottle, amount float64, unit units.Unit) (float64, error) {
	perUnit, err := b.CostPer(unit)
	if err != nil {
		return 0, err
	}
	return perUnit * amount, nil
}
