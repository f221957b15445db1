package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Season names one input dataset.
type Season struct {
	Label string `mapstructure:"label" yaml:"label"`
	File  string `mapstructure:"file" yaml:"file"`
}

// Global configuration structure.
type Global struct {
	Seasons   []Season `mapstructure:"seasons" yaml:"seasons"`
	Alpha     float64  `mapstructure:"alpha" yaml:"alpha"`
	ChartsDir string   `mapstructure:"charts_dir" yaml:"charts_dir"`
	ChartW    float64  `mapstructure:"chart_width_in" yaml:"chart_width_in"`
	ChartH    float64  `mapstructure:"chart_height_in" yaml:"chart_height_in"`
	// CSV delimiter: "," | ";" | "tab". Empty means auto-detect.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.verlander-analysis/config.yaml, creating the
// directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".verlander-analysis")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("VERLANDER")
	v.AutomaticEnv()

	// Defaults: the two Verlander season exports the tool ships around.
	v.SetDefault("seasons", []map[string]string{
		{"label": "2019", "file": "verlander_2019.csv"},
		{"label": "2022", "file": "verlander_2022.csv"},
	})
	v.SetDefault("alpha", 0.05)
	v.SetDefault("charts_dir", "charts")
	v.SetDefault("chart_width_in", 12.0)
	v.SetDefault("chart_height_in", 8.0)
	v.SetDefault("delimiter", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".verlander-analysis"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return nil, fmt.Errorf("alpha must be in (0,1), got %g", c.Alpha)
	}
	return &c, nil
}

// DelimiterRune maps the configured delimiter to the rune the loader takes;
// 0 means auto-detect.
func (c *Global) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %q (use ','|';'|'tab')", c.Delimiter)
	}
}
