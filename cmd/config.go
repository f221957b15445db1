package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/blaketorres2000-2/verlander-analysis/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		for _, s := range cfg.Seasons {
			fmt.Printf("season: %s -> %s\n", s.Label, s.File)
		}
		fmt.Printf("alpha: %.3f\n", cfg.Alpha)
		fmt.Printf("charts_dir: %s\n", cfg.ChartsDir)
		fmt.Printf("chart_width_in: %.1f\n", cfg.ChartW)
		fmt.Printf("chart_height_in: %.1f\n", cfg.ChartH)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "alpha":
			a, err := strconv.ParseFloat(val, 64)
			if err != nil || a <= 0 || a >= 1 {
				return fmt.Errorf("invalid alpha: %s (want a number in (0,1))", val)
			}
			cfg.Alpha = a
		case "charts_dir":
			cfg.ChartsDir = val
		case "chart_width_in":
			w, err := strconv.ParseFloat(val, 64)
			if err != nil || w <= 0 {
				return fmt.Errorf("invalid chart_width_in: %s", val)
			}
			cfg.ChartW = w
		case "chart_height_in":
			h, err := strconv.ParseFloat(val, 64)
			if err != nil || h <= 0 {
				return fmt.Errorf("invalid chart_height_in: %s", val)
			}
			cfg.ChartH = h
		case "delimiter":
			switch val {
			case ",", ";", "tab":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab')", val)
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
