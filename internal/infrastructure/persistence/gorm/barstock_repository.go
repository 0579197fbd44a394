package gorm

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/ports/outbound"
	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BarstockRepository implements outbound.BarstockRepository using GORM
type BarstockRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewBarstockRepository creates a new barstock repository
func NewBarstockRepository(db *gorm.DB, logger *zap.Logger) *BarstockRepository {
	return &BarstockRepository{
		db:     db,
		logger: logger.Named("barstock-repository"),
	}
}

// Snapshot loads the bar's bottles into an immutable catalog. The order is
// stable (category, type, bottle) so combination enumeration is repeatable
// across snapshots.
func (r *BarstockRepository) Snapshot(ctx context.Context, barID int) (*barstock.Catalog, error) {
	var models []BottleModel
	err := r.db.WithContext(ctx).
		Where("bar_id = ?", barID).
		Order("category, type, bottle").
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("load barstock", err)
	}

	bottles := make([]barstock.Bottle, 0, len(models))
	for i := range models {
		bottles = append(bottles, *bottleToDomain(&models[i]))
	}
	return barstock.NewCatalog(barID, bottles), nil
}

// Find looks up one bottle by identity
func (r *BarstockRepository) Find(ctx context.Context, barID int, typ, name string) (*barstock.Bottle, error) {
	var model BottleModel
	err := r.db.WithContext(ctx).
		Where("bar_id = ? AND type = ? AND bottle = ?", barID, typ, name).
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewNotFoundError("bottle")
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find bottle", err)
	}
	return bottleToDomain(&model), nil
}

// Upsert inserts or replaces a bottle, recomputing derived cost fields first
func (r *BarstockRepository) Upsert(ctx context.Context, b *barstock.Bottle) error {
	if !b.RecomputeCost() {
		r.logger.Warn("Bottle has no size; costs zeroed",
			zap.String("bottle", b.String()))
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(bottleToModel(b)).Error
	if err != nil {
		return errors.NewDatabaseError("upsert bottle", err)
	}
	return nil
}

// SetField applies one whitelisted field edit. Editing Type or Bottle changes
// the row's identity, so those rewrite the record under the new key.
func (r *BarstockRepository) SetField(ctx context.Context, barID int, typ, name string, field barstock.Field, value string) (*barstock.Bottle, error) {
	b, err := r.Find(ctx, barID, typ, name)
	if err != nil {
		return nil, err
	}
	if err := b.Set(field, value); err != nil {
		return nil, err
	}
	if b.SizeML <= 0 {
		r.logger.Warn("Bottle has no size; costs zeroed",
			zap.String("bottle", b.String()),
			zap.String("field", string(field)))
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if field == barstock.FieldType || field == barstock.FieldName {
			if err := tx.Where("bar_id = ? AND type = ? AND bottle = ?",
				barID, typ, name).Delete(&BottleModel{}).Error; err != nil {
				return err
			}
			return tx.Create(bottleToModel(b)).Error
		}
		return tx.Save(bottleToModel(b)).Error
	})
	if err != nil {
		return nil, errors.NewDatabaseError("update bottle", err)
	}
	return b, nil
}

// ToggleStock flips a bottle's in-stock flag
func (r *BarstockRepository) ToggleStock(ctx context.Context, barID int, typ, name string) (*barstock.Bottle, error) {
	b, err := r.Find(ctx, barID, typ, name)
	if err != nil {
		return nil, err
	}
	b.InStock = !b.InStock
	if err := r.db.WithContext(ctx).Save(bottleToModel(b)).Error; err != nil {
		return nil, errors.NewDatabaseError("toggle stock", err)
	}
	return b, nil
}

// Delete removes a bottle
func (r *BarstockRepository) Delete(ctx context.Context, barID int, typ, name string) error {
	result := r.db.WithContext(ctx).
		Where("bar_id = ? AND type = ? AND bottle = ?", barID, typ, name).
		Delete(&BottleModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("delete bottle", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("bottle")
	}
	return nil
}

// csvColumns maps spreadsheet header names to bottle fields. Proof and
// Size (oz) are accepted as alternates for ABV and Size (mL).
var csvColumns = map[string]string{
	"category":   "category",
	"type":       "type",
	"bottle":     "bottle",
	"in stock":   "in_stock",
	"abv":        "abv",
	"proof":      "proof",
	"size (ml)":  "size_ml",
	"size (oz)":  "size_oz",
	"price paid": "price_paid",
}

// ImportCSV loads bottles from a spreadsheet export. Malformed rows are
// logged and skipped; a bad row never aborts the rest of the file. With
// replace set, the bar's existing bottles are dropped in the same
// transaction.
func (r *BarstockRepository) ImportCSV(ctx context.Context, barID int, reader io.Reader, replace bool) (outbound.ImportReport, error) {
	var report outbound.ImportReport

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return report, errors.NewDataImportError("header", err)
	}
	columns := make(map[string]int)
	for i, cell := range header {
		if key, ok := csvColumns[strings.ToLower(strings.TrimSpace(cell))]; ok {
			columns[key] = i
		}
	}
	for _, required := range []string{"category", "type", "bottle"} {
		if _, ok := columns[required]; !ok {
			return report, errors.NewDataImportError("header",
				errors.NewValidationError("missing column "+required))
		}
	}

	var bottles []*barstock.Bottle
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			r.logger.Warn("Skipping malformed barstock row",
				zap.Int("line", line), zap.Error(err))
			report.Skipped++
			continue
		}
		b, err := parseBottleRow(barID, record, columns)
		if err != nil {
			r.logger.Warn("Skipping malformed barstock row",
				zap.Int("line", line), zap.Error(err))
			report.Skipped++
			continue
		}
		bottles = append(bottles, b)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Where("bar_id = ?", barID).Delete(&BottleModel{}).Error; err != nil {
				return err
			}
		}
		for _, b := range bottles {
			if !b.RecomputeCost() {
				r.logger.Warn("Imported bottle has no size; costs zeroed",
					zap.String("bottle", b.String()))
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).
				Create(bottleToModel(b)).Error; err != nil {
				return err
			}
			report.Imported++
		}
		return nil
	})
	if err != nil {
		return outbound.ImportReport{}, errors.NewDatabaseError("import barstock", err)
	}
	return report, nil
}

func parseBottleRow(barID int, record []string, columns map[string]int) (*barstock.Bottle, error) {
	cell := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	b := &barstock.Bottle{
		BarID:    barID,
		Category: barstock.Category(cell("category")),
		Type:     cell("type"),
		Name:     cell("bottle"),
		InStock:  true,
	}
	if b.Category == "" || b.Type == "" || b.Name == "" {
		return nil, errors.NewDataImportError(strings.Join(record, ","),
			errors.NewValidationError("category, type, and bottle are required"))
	}

	if v := cell("in_stock"); v != "" {
		inStock, err := parseStockCell(v)
		if err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
		b.InStock = inStock
	}

	// ABV directly, or halved from proof
	if v := cell("abv"); v != "" {
		abv, err := parseNumberCell(v)
		if err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
		b.ABV = abv
	} else if v := cell("proof"); v != "" {
		proof, err := parseNumberCell(v)
		if err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
		abv, err := units.Convert(proof, units.Proof, units.Percent)
		if err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
		b.ABV = abv
	}

	// Size in mL directly, or converted from oz
	if v := cell("size_ml"); v != "" {
		if err := b.Set(barstock.FieldSizeML, v); err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
	} else if v := cell("size_oz"); v != "" {
		if err := b.Set(barstock.FieldSizeOz, v); err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
	}

	if v := cell("price_paid"); v != "" {
		price, err := parseNumberCell(v)
		if err != nil {
			return nil, errors.NewDataImportError(strings.Join(record, ","), err)
		}
		b.PricePaid = price
	}
	return b, nil
}

func parseStockCell(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "x":
		return true, nil
	case "0", "false", "no", "":
		return false, nil
	default:
		return false, errors.NewValidationError("In Stock: " + value)
	}
}

// parseNumberCell tolerates currency signs and thousands separators from
// spreadsheet exports
func parseNumberCell(value string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", "%", "").Replace(value)
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return 0, errors.NewValidationError(value)
	}
	return v, nil
}
