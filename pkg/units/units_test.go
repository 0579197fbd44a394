package units

import (
	"testing"

	"github.com/barkeep/v1/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertVolume(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Unit
		want     float64
	}{
		{"mL to oz", 750, Milliliter, Ounce, 750 / MLPerOz},
		{"oz to mL", 2, Ounce, Milliliter, 2 * MLPerOz},
		{"mL to cL", 750, Milliliter, Centiliter, 75},
		{"cL to mL", 75, Centiliter, Milliliter, 750},
		{"same unit", 1.5, Ounce, Ounce, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertStrength(t *testing.T) {
	got, err := Convert(40, Percent, Proof)
	require.NoError(t, err)
	assert.InDelta(t, 80.0, got, 1e-9)

	got, err = Convert(100, Proof, Percent)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, got, 1e-9)
}

func TestConvertRoundTrip(t *testing.T) {
	oz, err := Convert(750, Milliliter, Ounce)
	require.NoError(t, err)
	ml, err := Convert(oz, Ounce, Milliliter)
	require.NoError(t, err)
	assert.InDelta(t, 750.0, ml, 1e-9)
}

func TestConvertInvalidUnit(t *testing.T) {
	_, err := Convert(1, Unit("gallon"), Milliliter)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidUnit))

	_, err = Convert(1, Milliliter, Unit("firkin"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidUnit))
}

func TestConvertIncompatibleDimensions(t *testing.T) {
	// Volume to strength is not a conversion, it must not pass the value
	// through unchanged.
	_, err := Convert(40, Milliliter, Proof)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeInvalidUnit))
}

func TestIsVolume(t *testing.T) {
	assert.True(t, IsVolume(Ounce))
	assert.True(t, IsVolume(Milliliter))
	assert.False(t, IsVolume(Proof))
	assert.False(t, IsVolume(Unit("dash")))
}
