// Package gorm provides GORM model definitions and repositories for the
// application
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// BottleModel represents the GORM model for stocked bottles. The table keeps
// the historical "ingredients" name from earlier barstock spreadsheets.
type BottleModel struct {
	BarID    int    `gorm:"primaryKey;column:bar_id"`
	Category string `gorm:"type:varchar(50);not null"`
	Type     string `gorm:"primaryKey;type:varchar(100)"`
	Name     string `gorm:"primaryKey;column:bottle;type:varchar(255)"`
	InStock  bool   `gorm:"column:in_stock;default:true"`

	ABV       float64 `gorm:"column:abv"`
	SizeML    float64 `gorm:"column:size_ml"`
	PricePaid float64 `gorm:"column:price_paid"`

	// Derived; rewritten on every save
	TypeNorm  string  `gorm:"column:type_norm;type:varchar(100);index"`
	SizeOz    float64 `gorm:"column:size_oz"`
	CostPerML float64 `gorm:"column:cost_per_ml"`
	CostPerCL float64 `gorm:"column:cost_per_cl"`
	CostPerOz float64 `gorm:"column:cost_per_oz"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for BottleModel
func (BottleModel) TableName() string {
	return "ingredients"
}

// OrderModel represents the GORM model for drink orders
type OrderModel struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	BarID        int       `gorm:"column:bar_id;not null;index"`
	RecipeName   string    `gorm:"type:varchar(255);not null"`
	CustomerName string    `gorm:"type:varchar(255)"`
	Email        string    `gorm:"type:varchar(255)"`
	Notes        string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index"`
	ConfirmedAt  *time.Time
}

// TableName specifies the table name for OrderModel
func (OrderModel) TableName() string {
	return "orders"
}
