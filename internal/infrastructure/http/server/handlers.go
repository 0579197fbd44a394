package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/barkeep/v1/internal/application/menu"
	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleBar(w http.ResponseWriter, r *http.Request) {
	cfg := s.menu.Config()
	s.writeJSON(w, http.StatusOK, BarResponse{
		Name:        cfg.Name,
		Tagline:     cfg.Tagline,
		DefaultUnit: string(cfg.DefaultUnit),
		ShowPrices:  cfg.ShowPrices,
	})
}

// handleMenu serves GET /api/v1/menu with the filter engine driven entirely
// by query parameters
func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := menu.FilterOptions{
		Search:       q.Get("search"),
		All:          queryBool(q, "all"),
		Include:      q.Get("include"),
		Exclude:      q.Get("exclude"),
		IncludeUseOr: queryBool(q, "include_use_or"),
		ExcludeUseOr: queryBool(q, "exclude_use_or"),
		Style:        q.Get("style"),
		Glass:        q.Get("glass"),
		Prep:         q.Get("prep"),
		Ice:          q.Get("ice"),
		Name:         q.Get("name"),
		Tag:          q.Get("tag"),
		Sort:         q.Get("sort"),
	}

	recipes, err := s.menu.Browse(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, s.recipeToResponse(rec, false))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSurprise(w http.ResponseWriter, r *http.Request) {
	rec, err := s.menu.Surprise(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.recipeToResponse(rec, false))
}

func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, errors.NewBadRequestError("malformed recipe name"))
		return
	}
	rec, err := s.menu.Find(r.Context(), name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.recipeToResponse(rec, true))
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !s.decode(w, r, &req) {
		return
	}
	o, err := s.menu.PlaceOrder(r.Context(), req.RecipeName, req.CustomerName, req.Email, req.Notes)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, orderToResponse(o))
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.menu.Orders(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderToResponse(o))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleConfirmOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, errors.NewBadRequestError("malformed order id"))
		return
	}
	o, err := s.menu.ConfirmOrder(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, orderToResponse(o))
}

func (s *Server) handleListBottles(w http.ResponseWriter, r *http.Request) {
	cat := s.menu.Catalog()
	if cat == nil {
		s.writeJSON(w, http.StatusOK, []BottleResponse{})
		return
	}
	bottles := cat.Bottles()
	out := make([]BottleResponse, 0, len(bottles))
	for i := range bottles {
		out = append(out, bottleToResponse(&bottles[i]))
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpsertBottle(w http.ResponseWriter, r *http.Request) {
	var req UpsertBottleRequest
	if !s.decode(w, r, &req) {
		return
	}
	b := &barstock.Bottle{
		Category:  barstock.Category(req.Category),
		Type:      req.Type,
		Name:      req.Bottle,
		ABV:       req.ABV,
		SizeML:    req.SizeML,
		PricePaid: req.PricePaid,
		InStock:   true,
	}
	if req.InStock != nil {
		b.InStock = *req.InStock
	}
	if err := s.menu.UpsertBottle(r.Context(), b); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, bottleToResponse(b))
}

func (s *Server) handleSetBottleField(w http.ResponseWriter, r *http.Request) {
	var req SetBottleFieldRequest
	if !s.decode(w, r, &req) {
		return
	}
	b, err := s.menu.SetBottleField(r.Context(), req.Type, req.Bottle,
		barstock.Field(req.Field), req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, bottleToResponse(b))
}

func (s *Server) handleToggleStock(w http.ResponseWriter, r *http.Request) {
	var req BottleIdentityRequest
	if !s.decode(w, r, &req) {
		return
	}
	b, err := s.menu.ToggleBottleStock(r.Context(), req.Type, req.Bottle)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, bottleToResponse(b))
}

func (s *Server) handleDeleteBottle(w http.ResponseWriter, r *http.Request) {
	var req BottleIdentityRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.menu.DeleteBottle(r.Context(), req.Type, req.Bottle); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImportBarstock accepts a raw CSV body; ?replace=true drops the bar's
// existing bottles first
func (s *Server) handleImportBarstock(w http.ResponseWriter, r *http.Request) {
	replace := queryBool(r.URL.Query(), "replace")
	report, err := s.menu.ImportBarstock(r.Context(), r.Body, replace)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{
		"imported": report.Imported,
		"skipped":  report.Skipped,
	})
}

// decode unmarshals and validates a JSON request body. On failure it writes
// the error response and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, errors.NewBadRequestError("malformed JSON body"))
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func queryBool(q url.Values, key string) bool {
	v, err := strconv.ParseBool(q.Get(key))
	return err == nil && v
}
