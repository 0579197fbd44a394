// Package barstock contains the core domain logic for a bar's bottle
// inventory: the bottles themselves, specifier matching, and per-volume
// costing.
package barstock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/barkeep/v1/pkg/units"
)

// Category classifies a bottle on the shelf
type Category string

const (
	CategorySpirit   Category = "Spirit"
	CategoryLiqueur  Category = "Liqueur"
	CategoryVermouth Category = "Vermouth"
	CategoryBitters  Category = "Bitters"
	CategorySyrup    Category = "Syrup"
	CategoryJuice    Category = "Juice"
	CategoryMixer    Category = "Mixer"
	CategoryWine     Category = "Wine"
	CategoryBeer     Category = "Beer"
	CategoryDry      Category = "Dry"
	CategoryIce      Category = "Ice"
)

// Categories lists every recognized category, in shelf order
var Categories = []Category{
	CategorySpirit, CategoryLiqueur, CategoryVermouth, CategoryBitters,
	CategorySyrup, CategoryJuice, CategoryMixer, CategoryWine,
	CategoryBeer, CategoryDry, CategoryIce,
}

// Bottle represents one stocked product at a bar.
// Identity is (BarID, Type, Name).
type Bottle struct {
	BarID     int
	Category  Category
	Type      string
	Name      string
	ABV       float64
	SizeML    float64
	PricePaid float64
	InStock   bool

	// Derived from SizeML and PricePaid; recomputed via RecomputeCost
	SizeOz    float64
	CostPerML float64
	CostPerCL float64
	CostPerOz float64
}

// Key returns the bottle's identity key within its bar
func (b *Bottle) Key() string {
	return fmt.Sprintf("%d|%s|%s", b.BarID, b.Type, b.Name)
}

// String implements fmt.Stringer
func (b *Bottle) String() string {
	return strings.Join([]string{string(b.Category), b.Type, b.Name}, "|")
}

// NormalizedType returns the lowercased type string used for matching
func (b *Bottle) NormalizedType() string {
	return strings.ToLower(b.Type)
}

// RecomputeCost rederives SizeOz and the per-volume cost fields. A zero
// size yields zero costs and a false return instead of failing; the caller
// decides whether to log the degraded bottle.
func (b *Bottle) RecomputeCost() bool {
	if b.SizeML <= 0 {
		b.SizeOz = 0
		b.CostPerML = 0
		b.CostPerCL = 0
		b.CostPerOz = 0
		return false
	}
	b.SizeOz = b.SizeML / units.MLPerOz
	b.CostPerML = b.PricePaid / b.SizeML
	b.CostPerCL = b.PricePaid * 10 / b.SizeML
	b.CostPerOz = b.PricePaid / b.SizeOz
	return true
}

// CostPer returns the bottle's cost per one unit of the given volume unit
func (b *Bottle) CostPer(unit units.Unit) (float64, error) {
	switch unit {
	case units.Milliliter:
		return b.CostPerML, nil
	case units.Centiliter:
		return b.CostPerCL, nil
	case units.Ounce:
		return b.CostPerOz, nil
	default:
		return 0, errors.NewInvalidUnitError(string(unit))
	}
}

// Field identifies one editable bottle attribute. The enumeration is the
// whitelist: setters reject anything outside it at the boundary.
type Field string

const (
	FieldCategory  Field = "Category"
	FieldType      Field = "Type"
	FieldName      Field = "Bottle"
	FieldInStock   Field = "In_Stock"
	FieldABV       Field = "ABV"
	FieldSizeML    Field = "Size_mL"
	FieldSizeOz    Field = "Size_oz"
	FieldPricePaid Field = "Price_Paid"
)

// EditableFields lists every field a caller may set
var EditableFields = []Field{
	FieldCategory, FieldType, FieldName, FieldInStock,
	FieldABV, FieldSizeML, FieldSizeOz, FieldPricePaid,
}

// Set applies a string value to the named field with per-field parsing.
// Size_oz is converted and stored as Size_mL since all costing runs on
// milliliters. Cost fields are rederived whenever size, price, or type
// change. Fields outside the enumeration return UNKNOWN_FIELD.
func (b *Bottle) Set(field Field, value string) error {
	switch field {
	case FieldCategory:
		b.Category = Category(value)
	case FieldType:
		b.Type = value
	case FieldName:
		b.Name = value
	case FieldInStock:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return errors.NewValidationError(fmt.Sprintf("In_Stock: %v", err))
		}
		b.InStock = v
	case FieldABV:
		v, err := parseFloatField("ABV", value)
		if err != nil {
			return err
		}
		b.ABV = v
	case FieldSizeML:
		v, err := parseFloatField("Size_mL", value)
		if err != nil {
			return err
		}
		b.SizeML = v
	case FieldSizeOz:
		v, err := parseFloatField("Size_oz", value)
		if err != nil {
			return err
		}
		ml, err := units.Convert(v, units.Ounce, units.Milliliter)
		if err != nil {
			return err
		}
		b.SizeML = ml
	case FieldPricePaid:
		v, err := parseFloatField("Price_Paid", value)
		if err != nil {
			return err
		}
		b.PricePaid = v
	default:
		return errors.NewUnknownFieldError(string(field))
	}

	switch field {
	case FieldSizeML, FieldSizeOz, FieldPricePaid, FieldType:
		b.RecomputeCost()
	}
	return nil
}

// Get returns the current value of the named field as a string
func (b *Bottle) Get(field Field) (string, error) {
	switch field {
	case FieldCategory:
		return string(b.Category), nil
	case FieldType:
		return b.Type, nil
	case FieldName:
		return b.Name, nil
	case FieldInStock:
		return strconv.FormatBool(b.InStock), nil
	case FieldABV:
		return strconv.FormatFloat(b.ABV, 'f', -1, 64), nil
	case FieldSizeML:
		return strconv.FormatFloat(b.SizeML, 'f', -1, 64), nil
	case FieldSizeOz:
		return strconv.FormatFloat(b.SizeOz, 'f', -1, 64), nil
	case FieldPricePaid:
		return strconv.FormatFloat(b.PricePaid, 'f', -1, 64), nil
	default:
		return "", errors.NewUnknownFieldError(string(field))
	}
}

func parseFloatField(name, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, errors.NewValidationError(fmt.Sprintf("%s: %v", name, err))
	}
	return v, nil
}
