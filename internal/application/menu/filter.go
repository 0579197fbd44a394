package menu

import (
	"sort"
	"strings"

	"github.com/barkeep/v1/internal/domain/recipe"
)

// FilterOptions narrows a recipe set for display. Include and Exclude are
// comma-separated ingredient keyword lists; the *UseOr flags switch them
// from all-of to any-of semantics. A non-empty Search widens the result:
// a recipe passes if it matches the search text OR all other filters.
type FilterOptions struct {
	Search       string
	All          bool
	Include      string
	Exclude      string
	IncludeUseOr bool
	ExcludeUseOr bool
	Style        string
	Glass        string
	Prep         string
	Ice          string
	Name         string
	Tag          string
	Sort         string
}

// Filter partitions recipes into (included, excluded). Pure: recipes are
// not reordered or mutated. Recipes that cannot be made from the current
// barstock are excluded from results unless All is set.
func Filter(recipes []*recipe.Recipe, opts FilterOptions) (included, excluded []*recipe.Recipe) {
	union := opts.Search != ""
	for _, r := range recipes {
		if !r.CanMake && !opts.All {
			excluded = append(excluded, r)
			continue
		}

		pass := passesFilters(r, opts)
		if union {
			pass = matchesSearch(r, opts.Search) || (opts.hasFilters() && pass)
		}
		if pass {
			included = append(included, r)
		} else {
			excluded = append(excluded, r)
		}
	}
	return included, excluded
}

// hasFilters reports whether any criterion besides Search is set
func (opts FilterOptions) hasFilters() bool {
	return opts.Name != "" || opts.Tag != "" || opts.Style != "" ||
		opts.Glass != "" || opts.Prep != "" || opts.Ice != "" ||
		opts.Include != "" || opts.Exclude != ""
}

func passesFilters(r *recipe.Recipe, opts FilterOptions) bool {
	if opts.Name != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(opts.Name)) {
		return false
	}
	if opts.Tag != "" && !r.HasTag(opts.Tag) {
		return false
	}
	if !fieldMatches(r.Style, opts.Style) ||
		!fieldMatches(r.Glass, opts.Glass) ||
		!fieldMatches(r.Prep, opts.Prep) ||
		!fieldMatches(r.Ice, opts.Ice) {
		return false
	}
	if keywords := splitList(opts.Include); len(keywords) > 0 {
		if !containsKeywords(r, keywords, opts.IncludeUseOr) {
			return false
		}
	}
	if keywords := splitList(opts.Exclude); len(keywords) > 0 {
		if containsKeywords(r, keywords, opts.ExcludeUseOr) {
			return false
		}
	}
	return true
}

func fieldMatches(value, want string) bool {
	return want == "" || strings.EqualFold(value, want)
}

func matchesSearch(r *recipe.Recipe, search string) bool {
	return strings.Contains(r.SearchText(), strings.ToLower(strings.TrimSpace(search)))
}

// containsKeywords tests ingredient keywords with any-of (useOr) or all-of
// semantics
func containsKeywords(r *recipe.Recipe, keywords []string, useOr bool) bool {
	for _, kw := range keywords {
		hit := r.ContainsIngredient(kw)
		if useOr && hit {
			return true
		}
		if !useOr && !hit {
			return false
		}
	}
	return !useOr
}

func splitList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// SortByStat orders recipes by a named average stat ("cost", "abv",
// "std_drinks"), ascending. A trailing "X" on the key reverses the order.
// Recipes with undefined stats always sort last. The input slice is not
// modified.
func SortByStat(recipes []*recipe.Recipe, key string) []*recipe.Recipe {
	if key == "" {
		return recipes
	}
	reverse := strings.HasSuffix(key, "X")
	attr := strings.TrimSuffix(key, "X")

	out := append([]*recipe.Recipe(nil), recipes...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, oki := statAttr(out[i], attr)
		vj, okj := statAttr(out[j], attr)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		if reverse {
			return vi > vj
		}
		return vi < vj
	})
	return out
}

func statAttr(r *recipe.Recipe, attr string) (float64, bool) {
	if r.Stats == nil {
		return 0, false
	}
	return r.Stats.Attr(attr)
}
