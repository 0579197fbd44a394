package server

import (
	"time"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/order"
	"github.com/barkeep/v1/internal/domain/recipe"
)

// BarResponse describes the bar's presentation settings
type BarResponse struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline,omitempty"`
	DefaultUnit string `json:"default_unit"`
	ShowPrices  bool   `json:"show_prices"`
}

// StatsResponse carries a recipe's aggregate figures
type StatsResponse struct {
	MinCost      float64 `json:"min_cost"`
	MaxCost      float64 `json:"max_cost"`
	AvgCost      float64 `json:"avg_cost"`
	MinABV       float64 `json:"min_abv"`
	MaxABV       float64 `json:"max_abv"`
	AvgABV       float64 `json:"avg_abv"`
	MinStdDrinks float64 `json:"min_std_drinks"`
	MaxStdDrinks float64 `json:"max_std_drinks"`
	AvgStdDrinks float64 `json:"avg_std_drinks"`
}

// ExampleResponse is one costed bottle combination
type ExampleResponse struct {
	Bottles   []string `json:"bottles"`
	Cost      float64  `json:"cost"`
	ABV       float64  `json:"abv"`
	StdDrinks float64  `json:"std_drinks"`
}

// RecipeResponse is a resolved recipe as served to clients
type RecipeResponse struct {
	Name        string            `json:"name"`
	Info        string            `json:"info,omitempty"`
	Origin      string            `json:"origin,omitempty"`
	Style       string            `json:"style,omitempty"`
	Glass       string            `json:"glass,omitempty"`
	Prep        string            `json:"prep,omitempty"`
	Ice         string            `json:"ice,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Variants    []string          `json:"variants,omitempty"`
	Ingredients []string          `json:"ingredients"`
	CanMake     bool              `json:"can_make"`
	Price       string            `json:"price,omitempty"`
	Stats       *StatsResponse    `json:"stats,omitempty"`
	Examples    []ExampleResponse `json:"examples,omitempty"`
}

// BottleResponse is one barstock entry as served to the admin UI
type BottleResponse struct {
	Category  string  `json:"category"`
	Type      string  `json:"type"`
	Bottle    string  `json:"bottle"`
	InStock   bool    `json:"in_stock"`
	ABV       float64 `json:"abv"`
	SizeML    float64 `json:"size_ml"`
	SizeOz    float64 `json:"size_oz"`
	PricePaid float64 `json:"price_paid"`
	CostPerOz float64 `json:"cost_per_oz"`
}

// OrderResponse is one placed order
type OrderResponse struct {
	ID           string     `json:"id"`
	RecipeName   string     `json:"recipe_name"`
	CustomerName string     `json:"customer_name,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	ConfirmedAt  *time.Time `json:"confirmed_at,omitempty"`
}

// UpsertBottleRequest creates or replaces a barstock entry
type UpsertBottleRequest struct {
	Category  string  `json:"category" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	Bottle    string  `json:"bottle" validate:"required"`
	InStock   *bool   `json:"in_stock,omitempty"`
	ABV       float64 `json:"abv" validate:"gte=0,lte=100"`
	SizeML    float64 `json:"size_ml" validate:"gte=0"`
	PricePaid float64 `json:"price_paid" validate:"gte=0"`
}

// SetBottleFieldRequest applies one whitelisted field edit
type SetBottleFieldRequest struct {
	Type   string `json:"type" validate:"required"`
	Bottle string `json:"bottle" validate:"required"`
	Field  string `json:"field" validate:"required"`
	Value  string `json:"value"`
}

// BottleIdentityRequest names one bottle
type BottleIdentityRequest struct {
	Type   string `json:"type" validate:"required"`
	Bottle string `json:"bottle" validate:"required"`
}

// PlaceOrderRequest asks for a drink off the menu
type PlaceOrderRequest struct {
	RecipeName   string `json:"recipe_name" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Notes        string `json:"notes" validate:"max=500"`
}

func (s *Server) recipeToResponse(r *recipe.Recipe, withExamples bool) RecipeResponse {
	resp := RecipeResponse{
		Name:     r.Name,
		Info:     r.Info,
		Origin:   r.Origin,
		Style:    r.Style,
		Glass:    r.Glass,
		Prep:     r.Prep,
		Ice:      r.Ice,
		Tags:     r.Tags,
		Variants: r.Variants,
		CanMake:  r.CanMake,
	}
	for _, ing := range r.Ingredients {
		resp.Ingredients = append(resp.Ingredients, ing.String())
	}
	if r.Stats != nil {
		resp.Stats = &StatsResponse{
			MinCost:      r.Stats.MinCost,
			MaxCost:      r.Stats.MaxCost,
			AvgCost:      r.Stats.AvgCost,
			MinABV:       r.Stats.MinABV,
			MaxABV:       r.Stats.MaxABV,
			AvgABV:       r.Stats.AvgABV,
			MinStdDrinks: r.Stats.MinStdDrinks,
			MaxStdDrinks: r.Stats.MaxStdDrinks,
			AvgStdDrinks: r.Stats.AvgStdDrinks,
		}
		if s.menu.Config().ShowPrices {
			resp.Price = s.printer.Sprintf("$%d", s.menu.PriceFor(r))
		}
	}
	if withExamples {
		for _, ex := range r.Examples {
			resp.Examples = append(resp.Examples, ExampleResponse{
				Bottles:   ex.Bottles,
				Cost:      ex.Cost,
				ABV:       ex.ABV,
				StdDrinks: ex.StdDrinks,
			})
		}
	}
	return resp
}

func bottleToResponse(b *barstock.Bottle) BottleResponse {
	return BottleResponse{
		Category:  string(b.Category),
		Type:      b.Type,
		Bottle:    b.Name,
		InStock:   b.InStock,
		ABV:       b.ABV,
		SizeML:    b.SizeML,
		SizeOz:    b.SizeOz,
		PricePaid: b.PricePaid,
		CostPerOz: b.CostPerOz,
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID.String(),
		RecipeName:   o.RecipeName,
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		ConfirmedAt:  o.ConfirmedAt,
	}
}
