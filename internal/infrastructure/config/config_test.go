package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/barkeep/v1/internal/application/menu"
	"github.com/barkeep/v1/pkg/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Barkeep", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1, cfg.Bar.ID)
	assert.Equal(t, 3.0, cfg.Bar.Markup)
	assert.Equal(t, "multiplicative", cfg.Bar.MarkupModel)
	assert.Equal(t, "oz", cfg.Bar.DefaultUnit)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bar:
  name: "The Velvet Hour"
  tagline: "Drinks, properly"
  markup: 2.5
  markup_model: additive
  default_unit: mL
server:
  port: 9000
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "The Velvet Hour", cfg.Bar.Name)
	assert.Equal(t, 2.5, cfg.Bar.Markup)
	assert.Equal(t, 9000, cfg.Server.Port)

	bc := cfg.BarConfig()
	assert.Equal(t, menu.MarkupAdditive, bc.MarkupModel)
	assert.Equal(t, units.Milliliter, bc.DefaultUnit)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BARKEEP_BAR_MARKUP", "4")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Bar.Markup)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Bar.MarkupModel = "percentage"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Bar.DefaultUnit = "dash"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Bar.Markup = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())
}
