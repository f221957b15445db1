package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/blaketorres2000-2/verlander-analysis/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "verlander",
	Short: "Analyze whether pitch selection depends on the ball-strike count",
	Long: `verlander loads pitch-level Statcast CSV exports, cross-tabulates
pitch type against the ball-strike count, runs a chi-square test of
independence per season, and reports residuals, the most likely pitch per
count, and a grouped bar chart of the distribution.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.verlander-analysis/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: commands fall back to defaults where they can
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}
