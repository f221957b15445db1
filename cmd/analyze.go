package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blaketorres2000-2/verlander-analysis/internal/analysis"
	"github.com/blaketorres2000-2/verlander-analysis/internal/chart"
	cfgpkg "github.com/blaketorres2000-2/verlander-analysis/internal/config"
	"github.com/blaketorres2000-2/verlander-analysis/internal/runmeta"
	"github.com/blaketorres2000-2/verlander-analysis/internal/statcast"
	"github.com/spf13/cobra"
)

var (
	anaSeasons    []string
	anaAlpha      float64
	anaChartsDir  string
	anaNoCharts   bool
	anaDelimiter  string
	anaOutputPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the pitch-selection analysis for every configured season",
	Long: `Runs the full pipeline per season: load the CSV, cross-tabulate
pitch type against count, chi-square test, residuals, most likely pitch per
count, and a grouped bar chart. Seasons are independent: a failure in one is
reported and the rest still run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}

		seasons := cfg.Seasons
		if len(anaSeasons) > 0 {
			parsed, err := parseSeasonFlags(anaSeasons)
			if err != nil {
				return err
			}
			seasons = parsed
		}
		if len(seasons) == 0 {
			return fmt.Errorf("no seasons configured; use --season label=path")
		}

		alpha := cfg.Alpha
		if cmd.Flags().Changed("alpha") {
			if anaAlpha <= 0 || anaAlpha >= 1 {
				return fmt.Errorf("alpha must be in (0,1), got %g", anaAlpha)
			}
			alpha = anaAlpha
		}

		delim, err := delimiterRune()
		if err != nil {
			return err
		}

		chartsDir := cfg.ChartsDir
		if cmd.Flags().Changed("charts-dir") {
			chartsDir = anaChartsDir
		} else if anaOutputPath != "" {
			chartsDir = filepath.Join(anaOutputPath, "charts")
		}
		chartOpt := chart.Options{WidthIn: cfg.ChartW, HeightIn: cfg.ChartH}
		if chartOpt.WidthIn <= 0 || chartOpt.HeightIn <= 0 {
			chartOpt = chart.DefaultOptions()
		}

		var man *runmeta.Manifest
		if anaOutputPath != "" {
			if err := os.MkdirAll(anaOutputPath, 0o755); err != nil {
				return fmt.Errorf("mkdir output dir: %w", err)
			}
			man = runmeta.New(alpha)
		}

		failed := 0
		for i, s := range seasons {
			entry := runmeta.SeasonEntry{Label: s.Label, Source: s.File}
			rep, err := runSeason(s, delim, alpha)
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ Season %s: %v\n", s.Label, err)
				failed++
				if man != nil {
					entry.Error = err.Error()
					man.Add(entry)
				}
				continue
			}

			if !anaNoCharts {
				if err := os.MkdirAll(chartsDir, 0o755); err != nil {
					return fmt.Errorf("mkdir charts dir: %w", err)
				}
				chartPath := filepath.Join(chartsDir, fmt.Sprintf("pitch_distribution_%s.png", s.Label))
				title := fmt.Sprintf("Pitch Type Distribution by Count in %s", s.Label)
				if err := chart.Grouped(rep.Table, title, chartPath, chartOpt); err != nil {
					fmt.Fprintf(os.Stderr, "⚠ Warning: chart for %s: %v\n", s.Label, err)
				} else {
					rep.ChartPath = chartPath
					entry.Chart = chartPath
					fmt.Fprintf(os.Stderr, "✓ Wrote chart to %s\n", chartPath)
				}
			}

			text := rep.Text()
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(text)

			if anaOutputPath != "" {
				name := fmt.Sprintf("report_%s.txt", s.Label)
				if err := os.WriteFile(filepath.Join(anaOutputPath, name), []byte(text), 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				entry.Report = name
				man.Add(entry)
			}
		}

		if man != nil {
			if err := man.Save(anaOutputPath); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "✓ Wrote run manifest to %s\n", filepath.Join(anaOutputPath, "run.yaml"))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d season(s) failed", failed, len(seasons))
		}
		return nil
	},
}

// runSeason executes the whole pipeline for one season.
func runSeason(s cfgpkg.Season, delim rune, alpha float64) (*analysis.SeasonReport, error) {
	res, err := statcast.LoadCSV(s.File, delim)
	if err != nil {
		return nil, err
	}
	if len(res.Pitches) == 0 {
		return nil, fmt.Errorf("no usable pitch records in %s", s.File)
	}
	tab := analysis.Crosstab(res.Pitches)
	test, err := analysis.ChiSquareTest(tab)
	if err != nil {
		return nil, err
	}
	return &analysis.SeasonReport{
		Season:     s.Label,
		Records:    len(res.Pitches),
		Skipped:    res.Skipped,
		Table:      tab,
		Test:       test,
		Alpha:      alpha,
		Residuals:  analysis.Residuals(tab, test.Expected),
		MostLikely: analysis.MostLikelyPitches(res.Pitches, tab.Counts),
	}, nil
}

// parseSeasonFlags parses repeated --season label=path values.
func parseSeasonFlags(vals []string) ([]cfgpkg.Season, error) {
	seasons := make([]cfgpkg.Season, 0, len(vals))
	for _, v := range vals {
		label, path, ok := strings.Cut(v, "=")
		if !ok || strings.TrimSpace(label) == "" || strings.TrimSpace(path) == "" {
			return nil, fmt.Errorf("invalid --season %q (want label=path)", v)
		}
		seasons = append(seasons, cfgpkg.Season{Label: strings.TrimSpace(label), File: strings.TrimSpace(path)})
	}
	return seasons, nil
}

// delimiterRune resolves the delimiter from the flag, falling back to config.
func delimiterRune() (rune, error) {
	switch anaDelimiter {
	case "":
		return cfg.DelimiterRune()
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", anaDelimiter)
	}
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSliceVar(&anaSeasons, "season", nil, "season as label=path (repeatable, overrides config)")
	analyzeCmd.Flags().Float64Var(&anaAlpha, "alpha", 0.05, "significance level for the independence decision")
	analyzeCmd.Flags().StringVar(&anaChartsDir, "charts-dir", "", "directory for chart PNGs (default from config)")
	analyzeCmd.Flags().BoolVar(&anaNoCharts, "no-charts", false, "skip chart rendering")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "directory to write reports and a run manifest")
}
