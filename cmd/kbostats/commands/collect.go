package commands

import (
	"database/sql"
	"os"
	"time"

	"github.com/Hawk-Jo/baseball-analysis/lib/kbo"
	"github.com/Hawk-Jo/baseball-analysis/lib/serviceutil"
	"github.com/Hawk-Jo/baseball-analysis/services/collector"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

func init() {
	collectCmd.AddCommand(collectHittersCmd)
	collectCmd.AddCommand(collectPitchersCmd)
	rootCmd.AddCommand(collectCmd)
}

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Scrapes season records off the official site and writes the CSV outputs.",
}

func newCollector(cfg Config) collector.Service {
	opts := kbo.ClientOptions{}
	if cfg.NavDelayMS > 0 {
		opts.NavDelay = time.Duration(cfg.NavDelayMS) * time.Millisecond
	}
	client, err := kbo.NewClient(opts)
	if err != nil {
		serviceutil.Fatal("failed to initialize record site client", err)
	}

	var store *collector.Store
	if cfg.ArchiveDB != "" {
		database, err := sql.Open("sqlite", cfg.ArchiveDB)
		if err != nil {
			serviceutil.Fatal("failed to open archive database", err)
		}
		s, err := collector.NewStore(database)
		if err != nil {
			serviceutil.Fatal("failed to initialize archive store", err)
		}
		store = &s
	}

	return collector.NewService(client, store, collector.Options{
		Seasons: cfg.Seasons,
		Team:    cfg.Team,
		MinPA:   cfg.MinPA,
		MinIP:   cfg.MinIP,
		DataDir: cfg.DataDir,
	})
}

var collectHittersCmd = &cobra.Command{
	Use:   "hitters",
	Short: "Collects hitter records for every configured season.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newCollector(mustConfig())

		result, err := svc.CollectHitters(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to collect hitters", err)
		}
		svc.WriteHitterSummary(os.Stdout, result)
	},
}

var collectPitchersCmd = &cobra.Command{
	Use:   "pitchers",
	Short: "Collects pitcher records for every configured season.",
	Run: func(cmd *cobra.Command, args []string) {
		svc := newCollector(mustConfig())

		result, err := svc.CollectPitchers(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to collect pitchers", err)
		}
		svc.WritePitcherSummary(os.Stdout, result)
	},
}
