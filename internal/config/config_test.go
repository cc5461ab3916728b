// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validConfigJSON = `{
    "database_path": "test.db",
    "export_dir": "out",
    "debug_logging": true,
    "purchase_axis": {"min": 1500, "max": 5500, "count": 41},
    "scenario": {
        "purchase_price": 2800,
        "sale_price": 3600
    }
}`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfigJSON))
	require.NoError(t, err)

	assert.Equal(t, "test.db", cfg.DatabasePath)
	assert.Equal(t, "out", cfg.ExportDir)
	assert.True(t, cfg.DebugLogging)

	// overridden axis
	assert.Equal(t, 1500.0, cfg.PurchaseAxis.Min)
	assert.Equal(t, 41, cfg.PurchaseAxis.Count)
	// untouched axis keeps defaults
	assert.Equal(t, DefaultAxisMin, cfg.SaleAxis.Min)
	assert.Equal(t, DefaultAxisCount, cfg.SaleAxis.Count)

	// partial scenario: overridden fields applied, rest defaulted
	assert.Equal(t, 2800.0, cfg.Scenario.PurchasePrice)
	assert.Equal(t, 3600.0, cfg.Scenario.SalePrice)
	assert.Equal(t, 460.0, cfg.Scenario.ExitWeight)
	assert.Equal(t, 64000.0, cfg.Scenario.PricePerTon)
	assert.Equal(t, 100.0, cfg.Scenario.HeadCount)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, 3000.0, cfg.Scenario.PurchasePrice)
	assert.Equal(t, 1.2, cfg.Scenario.AverageDailyGain)
}

func TestLoadConfigRejectsInvalidAxis(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"sale_axis": {"min": 100, "max": 50, "count": 10}}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"purchase_axis": {"min": 0, "max": 50, "count": 0}}`))
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"database_path": `))
	assert.Error(t, err)
}

func TestAxisConversion(t *testing.T) {
	a := AxisConfig{Min: 10, Max: 20, Count: 3}.Axis()
	assert.Equal(t, []float64{10, 15, 20}, a.Values())
}
