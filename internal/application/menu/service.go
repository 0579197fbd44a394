package menu

import (
	"context"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/order"
	"github.com/barkeep/v1/internal/domain/recipe"
	"github.com/barkeep/v1/internal/ports/outbound"
	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BarConfig carries the per-bar presentation and pricing settings
type BarConfig struct {
	BarID       int
	Name        string
	Tagline     string
	Markup      float64
	MarkupModel MarkupModel
	DefaultUnit units.Unit
	ShowPrices  bool
}

// Recorder receives engine activity for metrics collection
type Recorder interface {
	RecordRegeneration(seconds float64)
	RecordMutation(operation string)
	RecordCombinations(n int)
	RecordOrderPlaced()
	RecordOrderRejected()
}

type noopRecorder struct{}

func (noopRecorder) RecordRegeneration(float64) {}
func (noopRecorder) RecordMutation(string)      {}
func (noopRecorder) RecordCombinations(int)     {}
func (noopRecorder) RecordOrderPlaced()         {}
func (noopRecorder) RecordOrderRejected()       {}

// Service owns the resolved menu: the recipe library joined against the
// current barstock. Every catalog mutation goes through here so the derived
// state is recomputed before the next read. There is no incremental path;
// Regenerate always rebuilds everything from a fresh snapshot.
type Service struct {
	cfg      BarConfig
	barstock outbound.BarstockRepository
	recipes  outbound.RecipeRepository
	orders   outbound.OrderRepository
	logger   *zap.Logger
	recorder Recorder

	mu      sync.RWMutex
	menu    []*recipe.Recipe
	catalog *barstock.Catalog
}

// NewService creates the menu service. The menu is empty until the first
// Regenerate.
func NewService(
	cfg BarConfig,
	barstockRepo outbound.BarstockRepository,
	recipeRepo outbound.RecipeRepository,
	orderRepo outbound.OrderRepository,
	logger *zap.Logger,
	recorder Recorder,
) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		cfg:      cfg,
		barstock: barstockRepo,
		recipes:  recipeRepo,
		orders:   orderRepo,
		logger:   logger.Named("menu-service"),
		recorder: recorder,
	}
}

// Config returns the bar's presentation settings
func (s *Service) Config() BarConfig {
	return s.cfg
}

// PriceFor converts a recipe's worst-case ingredient cost into the displayed
// menu price
func (s *Service) PriceFor(r *recipe.Recipe) int {
	if r.Stats == nil {
		return 0
	}
	return Price(r.Stats.MaxCost, s.cfg.Markup, s.cfg.MarkupModel)
}

// Regenerate rebuilds the whole menu from a fresh barstock snapshot: every
// recipe's bottle combinations, cost statistics, and makeability.
func (s *Service) Regenerate(ctx context.Context) error {
	start := time.Now()

	cat, err := s.barstock.Snapshot(ctx, s.cfg.BarID)
	if err != nil {
		return errors.Wrap(err, "failed to snapshot barstock")
	}
	library, err := s.recipes.All(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load recipe library")
	}

	makeable := 0
	for _, r := range library {
		if err := r.Convert(s.cfg.DefaultUnit); err != nil {
			return err
		}
		if err := Resolve(cat, r); err != nil {
			return err
		}
		s.recorder.RecordCombinations(len(r.Examples))
		if r.CanMake {
			makeable++
		}
	}

	s.mu.Lock()
	s.menu = library
	s.catalog = cat
	s.mu.Unlock()

	elapsed := time.Since(start)
	s.recorder.RecordRegeneration(elapsed.Seconds())
	s.logger.Info("Menu regenerated",
		zap.Int("bar_id", s.cfg.BarID),
		zap.Int("recipes", len(library)),
		zap.Int("makeable", makeable),
		zap.Int("bottles", len(cat.Bottles())),
		zap.Duration("elapsed", elapsed))
	return nil
}

// Browse filters and sorts the resolved menu. Recipes excluded by stock are
// only returned when opts.All is set.
func (s *Service) Browse(ctx context.Context, opts FilterOptions) ([]*recipe.Recipe, error) {
	s.mu.RLock()
	menu := s.menu
	s.mu.RUnlock()

	included, _ := Filter(menu, opts)
	return SortByStat(included, opts.Sort), nil
}

// Find returns one resolved recipe by exact name, case-insensitive
func (s *Service) Find(ctx context.Context, name string) (*recipe.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.menu {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return nil, errors.NewRecipeNotFoundError(name)
}

// Surprise picks a random recipe that can be made right now
func (s *Service) Surprise(ctx context.Context) (*recipe.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var makeable []*recipe.Recipe
	for _, r := range s.menu {
		if r.CanMake {
			makeable = append(makeable, r)
		}
	}
	if len(makeable) == 0 {
		return nil, errors.NewAppError(errors.CodeOutOfStock,
			"Nothing on the menu", "no recipe is makeable from the current barstock")
	}
	return makeable[rand.Intn(len(makeable))], nil
}

// Catalog returns the snapshot backing the current menu
func (s *Service) Catalog() *barstock.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// PlaceOrder records an order for a drink the barstock can currently supply
func (s *Service) PlaceOrder(ctx context.Context, recipeName, customerName, email, notes string) (*order.Order, error) {
	r, err := s.Find(ctx, recipeName)
	if err != nil {
		return nil, err
	}
	if !r.CanMake {
		s.recorder.RecordOrderRejected()
		return nil, errors.NewOutOfStockError(r.Name)
	}

	o := order.New(s.cfg.BarID, r.Name, customerName, email, notes)
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, errors.Wrap(err, "failed to save order")
	}
	s.recorder.RecordOrderPlaced()
	s.logger.Info("Order placed",
		zap.String("order_id", o.ID.String()),
		zap.String("recipe", o.RecipeName),
		zap.String("customer", o.CustomerName))
	return o, nil
}

// ConfirmOrder marks an order acknowledged by the bartender
func (s *Service) ConfirmOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := o.Confirm(); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}
	s.logger.Info("Order confirmed", zap.String("order_id", o.ID.String()))
	return o, nil
}

// Orders lists the bar's orders, newest first
func (s *Service) Orders(ctx context.Context) ([]*order.Order, error) {
	return s.orders.ListByBar(ctx, s.cfg.BarID)
}

// Barstock mutations. Each one writes through the repository and then
// regenerates the menu, so derived state never outlives the catalog that
// produced it.

// UpsertBottle inserts or replaces a bottle
func (s *Service) UpsertBottle(ctx context.Context, b *barstock.Bottle) error {
	b.BarID = s.cfg.BarID
	if err := s.barstock.Upsert(ctx, b); err != nil {
		return err
	}
	s.recorder.RecordMutation("upsert")
	return s.Regenerate(ctx)
}

// SetBottleField applies one whitelisted field edit
func (s *Service) SetBottleField(ctx context.Context, typ, name string, field barstock.Field, value string) (*barstock.Bottle, error) {
	b, err := s.barstock.SetField(ctx, s.cfg.BarID, typ, name, field, value)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordMutation("set_field")
	return b, s.Regenerate(ctx)
}

// ToggleBottleStock flips a bottle's availability
func (s *Service) ToggleBottleStock(ctx context.Context, typ, name string) (*barstock.Bottle, error) {
	b, err := s.barstock.ToggleStock(ctx, s.cfg.BarID, typ, name)
	if err != nil {
		return nil, err
	}
	s.recorder.RecordMutation("toggle_stock")
	return b, s.Regenerate(ctx)
}

// DeleteBottle removes a bottle from the barstock
func (s *Service) DeleteBottle(ctx context.Context, typ, name string) error {
	if err := s.barstock.Delete(ctx, s.cfg.BarID, typ, name); err != nil {
		return err
	}
	s.recorder.RecordMutation("delete")
	return s.Regenerate(ctx)
}

// ImportBarstock loads bottles from CSV and rebuilds the menu once at the end
func (s *Service) ImportBarstock(ctx context.Context, r io.Reader, replace bool) (outbound.ImportReport, error) {
	report, err := s.barstock.ImportCSV(ctx, s.cfg.BarID, r, replace)
	if err != nil {
		return report, err
	}
	s.recorder.RecordMutation("import_csv")
	s.logger.Info("Barstock imported",
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Bool("replace", replace))
	return report, s.Regenerate(ctx)
}
