// Package order contains the domain model for placed drink orders.
package order

import (
	"time"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/google/uuid"
)

// Order records a drink ordered at a bar. The recipe must have been makeable
// from the barstock at the time of ordering.
type Order struct {
	ID           uuid.UUID
	BarID        int
	RecipeName   string
	CustomerName string
	Email        string
	Notes        string
	CreatedAt    time.Time
	ConfirmedAt  *time.Time
}

// New creates a pending order
func New(barID int, recipeName, customerName, email, notes string) *Order {
	return &Order{
		ID:           uuid.New(),
		BarID:        barID,
		RecipeName:   recipeName,
		CustomerName: customerName,
		Email:        email,
		Notes:        notes,
		CreatedAt:    time.Now().UTC(),
	}
}

// Confirmed reports whether the bartender has acknowledged the order
func (o *Order) Confirmed() bool {
	return o.ConfirmedAt != nil
}

// Confirm marks the order acknowledged. Confirming twice is a conflict.
func (o *Order) Confirm() error {
	if o.Confirmed() {
		return errors.NewAppError(errors.CodeConflict,
			"Order already confirmed", o.ID.String())
	}
	now := time.Now().UTC()
	o.ConfirmedAt = &now
	return nil
}
