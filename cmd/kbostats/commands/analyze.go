package commands

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/Hawk-Jo/baseball-analysis/lib/serviceutil"
	"github.com/Hawk-Jo/baseball-analysis/services/analysis"
	"github.com/Hawk-Jo/baseball-analysis/services/collector"

	"github.com/spf13/cobra"
)

func init() {
	analyzeCmd.AddCommand(analyzeHittersCmd)
	analyzeCmd.AddCommand(analyzePitchersCmd)
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derives sabermetrics from the qualified CSVs and compares the two seasons.",
}

func newAnalyzer(cfg Config) analysis.Service {
	if len(cfg.Seasons) != 2 {
		serviceutil.Fatal(
			"analysis needs exactly two seasons",
			errors.New("check the seasons list in kbostats.json5"),
		)
	}
	return analysis.NewService(analysis.Options{
		SeasonA:     cfg.Seasons[0],
		SeasonB:     cfg.Seasons[1],
		FIPConstant: cfg.FIPConstant,
	})
}

// qualifiedPath resolves the collector's output location for a domain
// without standing up a scraping client.
func qualifiedPath(cfg Config, domain string) string {
	paths := collector.NewService(nil, nil, collector.Options{
		Team:    cfg.Team,
		DataDir: cfg.DataDir,
	})
	return paths.QualifiedPath(domain)
}

func writeCharts(cfg Config, name string, render func(io.Writer) error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		serviceutil.Fatal("failed to create output directory", err)
	}
	path := filepath.Join(cfg.OutputDir, name)
	if err := analysis.WriteChartFile(path, render); err != nil {
		serviceutil.Fatal("failed to write chart report", err)
	}
}

var analyzeHittersCmd = &cobra.Command{
	Use:   "hitters",
	Short: "Compares qualified hitters across the two configured seasons.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		svc := newAnalyzer(cfg)

		a, err := svc.AnalyzeHitters(cmd.Context(), qualifiedPath(cfg, "hitters"))
		if err != nil {
			serviceutil.Fatal("failed to analyze hitters", err)
		}
		svc.WriteHitterReport(os.Stdout, a)

		renderer := analysis.EChartsRenderer{}
		writeCharts(cfg, "hitters_report.html", func(w io.Writer) error {
			return renderer.RenderHitterCharts(a, w)
		})
	},
}

var analyzePitchersCmd = &cobra.Command{
	Use:   "pitchers",
	Short: "Compares qualified pitchers across the two configured seasons.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		svc := newAnalyzer(cfg)

		a, err := svc.AnalyzePitchers(cmd.Context(), qualifiedPath(cfg, "pitchers"))
		if err != nil {
			serviceutil.Fatal("failed to analyze pitchers", err)
		}
		svc.WritePitcherReport(os.Stdout, a)

		renderer := analysis.EChartsRenderer{}
		writeCharts(cfg, "pitchers_report.html", func(w io.Writer) error {
			return renderer.RenderPitcherCharts(a, w)
		})
	},
}
