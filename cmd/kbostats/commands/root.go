package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Hawk-Jo/baseball-analysis/lib/configutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/serviceutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/stats"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kbostats",
	Short: "kbostats collects KBO season records and compares them across seasons.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type Config struct {
	Seasons     []int   `json:"seasons"`
	Team        string  `json:"team"`
	MinPA       int     `json:"min_pa"`
	MinIP       float64 `json:"min_ip"`
	FIPConstant float64 `json:"fip_constant"`
	DataDir     string  `json:"data_dir"`
	OutputDir   string  `json:"output_dir"`
	// path to the sqlite archive; empty disables archiving
	ArchiveDB  string `json:"archive_db"`
	NavDelayMS int    `json:"nav_delay_ms"`
}

// mustConfig reads kbostats.json5, falling back to defaults when the
// file is absent. Zero-valued fields get defaults too, so a partial
// config only overrides what it names.
func mustConfig() Config {
	cfg, err := configutil.Load[Config]("kbostats.json5")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to read config", err)
	}

	if len(cfg.Seasons) == 0 {
		cfg.Seasons = []int{2024, 2025}
	}
	if cfg.Team == "" {
		cfg.Team = "SSG"
	}
	if cfg.MinPA == 0 {
		cfg.MinPA = 200
	}
	if cfg.MinIP == 0 {
		cfg.MinIP = 15
	}
	if cfg.FIPConstant == 0 {
		cfg.FIPConstant = stats.DefaultFIPConstant
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	return cfg
}
