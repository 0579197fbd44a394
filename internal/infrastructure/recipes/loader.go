// Package recipes loads the recipe library from its JSON file and serves
// fresh copies to the menu engine.
package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/recipe"
	"github.com/barkeep/v1/internal/ports/outbound"
	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ingredientDoc is one recipe line in the library file. Ingredients are an
// array, not a map: their order is the enumeration order of bottle
// combinations and must survive the round trip.
type ingredientDoc struct {
	Specifier string  `json:"specifier" validate:"required"`
	Bottle    string  `json:"bottle,omitempty"`
	Amount    float64 `json:"amount" validate:"gt=0"`
	Unit      string  `json:"unit" validate:"required"`
}

// recipeDoc is one recipe definition in the library file
type recipeDoc struct {
	Name        string          `json:"name" validate:"required"`
	Info        string          `json:"info,omitempty"`
	Origin      string          `json:"origin,omitempty"`
	Style       string          `json:"style,omitempty"`
	Glass       string          `json:"glass,omitempty"`
	Prep        string          `json:"prep,omitempty"`
	Ice         string          `json:"ice,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Variants    []string        `json:"variants,omitempty"`
	Ingredients []ingredientDoc `json:"ingredients" validate:"required,min=1,dive"`
}

// Library is an in-memory recipe repository backed by the library file.
// The base definitions are immutable; All and FindByName hand out clones so
// callers own their derived state.
type Library struct {
	logger *zap.Logger
	base   []*recipe.Recipe
	byName map[string]*recipe.Recipe
}

// NewLibrary parses a recipe library from a JSON stream
func NewLibrary(r io.Reader, logger *zap.Logger) (*Library, error) {
	var docs []recipeDoc
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, errors.NewDataImportError("recipe library", err)
	}

	validate := validator.New()
	lib := &Library{
		logger: logger.Named("recipe-library"),
		byName: make(map[string]*recipe.Recipe, len(docs)),
	}
	for i := range docs {
		doc := &docs[i]
		if err := validate.Struct(doc); err != nil {
			return nil, errors.NewDataImportError(doc.Name, err)
		}
		if _, exists := lib.byName[doc.Name]; exists {
			return nil, errors.NewDataImportError(doc.Name,
				errors.NewValidationError(fmt.Sprintf("duplicate recipe %q", doc.Name)))
		}
		r := docToDomain(doc)
		lib.base = append(lib.base, r)
		lib.byName[r.Name] = r
	}

	lib.logger.Info("Recipe library loaded", zap.Int("recipes", len(lib.base)))
	return lib, nil
}

// NewLibraryFromFile loads the recipe library from disk
func NewLibraryFromFile(path string, logger *zap.Logger) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewDataImportError(path, err)
	}
	defer f.Close()
	return NewLibrary(f, logger)
}

// All returns a fresh copy of every recipe, in library order
func (l *Library) All(ctx context.Context) ([]*recipe.Recipe, error) {
	out := make([]*recipe.Recipe, 0, len(l.base))
	for _, r := range l.base {
		out = append(out, r.Clone())
	}
	return out, nil
}

// FindByName returns a fresh copy of one recipe
func (l *Library) FindByName(ctx context.Context, name string) (*recipe.Recipe, error) {
	r, ok := l.byName[name]
	if !ok {
		return nil, errors.NewRecipeNotFoundError(name)
	}
	return r.Clone(), nil
}

func docToDomain(doc *recipeDoc) *recipe.Recipe {
	r := &recipe.Recipe{
		Name:     doc.Name,
		Info:     doc.Info,
		Origin:   doc.Origin,
		Style:    doc.Style,
		Glass:    doc.Glass,
		Prep:     doc.Prep,
		Ice:      doc.Ice,
		Tags:     doc.Tags,
		Variants: doc.Variants,
	}
	for _, ing := range doc.Ingredients {
		r.Ingredients = append(r.Ingredients, recipe.QuantizedIngredient{
			Specifier: barstock.Specifier{What: ing.Specifier, Bottle: ing.Bottle},
			Amount:    ing.Amount,
			Unit:      units.Unit(ing.Unit),
		})
	}
	return r
}

var _ outbound.RecipeRepository = (*Library)(nil)
