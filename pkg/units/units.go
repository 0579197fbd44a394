// Package units provides volume and strength conversions for barstock math.
package units

import (
	"github.com/barkeep/v1/pkg/errors"
)

// Unit represents a measurement unit
type Unit string

const (
	// Volume units
	Milliliter Unit = "mL"
	Centiliter Unit = "cL"
	Ounce      Unit = "oz"

	// Strength units
	Percent Unit = "percent"
	Proof   Unit = "proof"
)

// MLPerOz is the volume of one US fluid ounce in milliliters
const MLPerOz = 29.5735

// StandardDrinkOz is the volume of pure alcohol in one standard drink,
// in ounces
const StandardDrinkOz = 0.6

// volumeInML maps volume units to their size in milliliters
var volumeInML = map[Unit]float64{
	Milliliter: 1,
	Centiliter: 10,
	Ounce:      MLPerOz,
}

// strengthInPercent maps strength units to their size in ABV percent
// (proof = abv * 2)
var strengthInPercent = map[Unit]float64{
	Percent: 1,
	Proof:   0.5,
}

// IsVolume reports whether u is a recognized volume unit
func IsVolume(u Unit) bool {
	_, ok := volumeInML[u]
	return ok
}

// Convert converts a value between two volume units or two strength units.
// Unrecognized or incompatible units return an INVALID_UNIT error; the input
// is never silently passed through.
func Convert(value float64, from, to Unit) (float64, error) {
	if f, ok := volumeInML[from]; ok {
		t, ok := volumeInML[to]
		if !ok {
			return 0, errors.NewInvalidUnitError(string(to))
		}
		return value * f / t, nil
	}
	if f, ok := strengthInPercent[from]; ok {
		t, ok := strengthInPercent[to]
		if !ok {
			return 0, errors.NewInvalidUnitError(string(to))
		}
		return value * f / t, nil
	}
	return 0, errors.NewInvalidUnitError(string(from))
}
