// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/agrotools/feedlot-calc/internal/model"
)

// AxisConfig mirrors model.Axis in the config file.
type AxisConfig struct {
	Min   float64 `mapstructure:"min"`
	Max   float64 `mapstructure:"max"`
	Count int     `mapstructure:"count"`
}

// Axis converts the config section to a sampling axis.
func (a AxisConfig) Axis() model.Axis {
	return model.Axis{Min: a.Min, Max: a.Max, Count: a.Count}
}

type Config struct {
	DatabasePath string `mapstructure:"database_path"`
	ExportDir    string `mapstructure:"export_dir"`
	LogFile      string `mapstructure:"log_file"`
	DebugLogging bool   `mapstructure:"debug_logging"`

	PurchaseAxis AxisConfig `mapstructure:"purchase_axis"`
	SaleAxis     AxisConfig `mapstructure:"sale_axis"`

	Scenario model.ScenarioParams `mapstructure:"scenario"`
}

const (
	DefaultDatabasePath = "feedlot.db"
	DefaultExportDir    = "exports"
	DefaultLogFile      = "logs/feedlot.log"

	DefaultAxisMin   = 2000.0
	DefaultAxisMax   = 6000.0
	DefaultAxisCount = 81
)

// LoadConfig reads the JSON config at path. A missing file is not an error:
// the tool must start with defaults on a fresh machine.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("FEEDLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]interface{}{
		"database_path": DefaultDatabasePath,
		"export_dir":    DefaultExportDir,
		"log_file":      DefaultLogFile,
		"debug_logging": false,

		"purchase_axis.min":   DefaultAxisMin,
		"purchase_axis.max":   DefaultAxisMax,
		"purchase_axis.count": DefaultAxisCount,
		"sale_axis.min":       DefaultAxisMin,
		"sale_axis.max":       DefaultAxisMax,
		"sale_axis.count":     DefaultAxisCount,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	p := model.DefaultParams()
	scenario := map[string]interface{}{
		"scenario.purchase_price":        p.PurchasePrice,
		"scenario.sale_price":            p.SalePrice,
		"scenario.purchase_weight":       p.PurchaseWeight,
		"scenario.exit_weight":           p.ExitWeight,
		"scenario.price_per_ton":         p.PricePerTon,
		"scenario.feed_conversion_ratio": p.FeedConversionRatio,
		"scenario.average_daily_gain":    p.AverageDailyGain,
		"scenario.daily_overhead_cost":   p.DailyOverheadCost,
		"scenario.health_cost_per_head":  p.HealthCostPerHead,
		"scenario.head_count":            p.HeadCount,
		"scenario.mortality_pct":         p.MortalityPct,
	}
	for key, value := range scenario {
		v.SetDefault(key, value)
	}
}

func validateConfig(cfg *Config) error {
	if cfg.DatabasePath == "" {
		return errors.New("missing database_path in configuration")
	}
	if err := validateAxis("purchase_axis", cfg.PurchaseAxis); err != nil {
		return err
	}
	return validateAxis("sale_axis", cfg.SaleAxis)
}

func validateAxis(name string, a AxisConfig) error {
	if a.Count <= 0 {
		return errors.New("invalid " + name + ": count must be positive")
	}
	if a.Max < a.Min {
		return errors.New("invalid " + name + ": max below min")
	}
	return nil
}
