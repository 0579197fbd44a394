package gorm

import (
	"github.com/barkeep/v1/internal/domain/barstock"
	"github.com/barkeep/v1/internal/domain/order"
)

func bottleToModel(b *barstock.Bottle) *BottleModel {
	return &BottleModel{
		BarID:     b.BarID,
		Category:  string(b.Category),
		Type:      b.Type,
		Name:      b.Name,
		InStock:   b.InStock,
		ABV:       b.ABV,
		SizeML:    b.SizeML,
		PricePaid: b.PricePaid,
		TypeNorm:  b.NormalizedType(),
		SizeOz:    b.SizeOz,
		CostPerML: b.CostPerML,
		CostPerCL: b.CostPerCL,
		CostPerOz: b.CostPerOz,
	}
}

func bottleToDomain(m *BottleModel) *barstock.Bottle {
	return &barstock.Bottle{
		BarID:     m.BarID,
		Category:  barstock.Category(m.Category),
		Type:      m.Type,
		Name:      m.Name,
		InStock:   m.InStock,
		ABV:       m.ABV,
		SizeML:    m.SizeML,
		PricePaid: m.PricePaid,
		SizeOz:    m.SizeOz,
		CostPerML: m.CostPerML,
		CostPerCL: m.CostPerCL,
		CostPerOz: m.CostPerOz,
	}
}

func orderToModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:           o.ID,
		BarID:        o.BarID,
		RecipeName:   o.RecipeName,
		CustomerName: o.CustomerName,
		Email:        o.Email,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		ConfirmedAt:  o.ConfirmedAt,
	}
}

func orderToDomain(m *OrderModel) *order.Order {
	return &order.Order{
		ID:           m.ID,
		BarID:        m.BarID,
		RecipeName:   m.RecipeName,
		CustomerName: m.CustomerName,
		Email:        m.Email,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		ConfirmedAt:  m.ConfirmedAt,
	}
}
