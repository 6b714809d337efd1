package commands

import (
	"database/sql"
	"errors"
	"os"

	"github.com/Hawk-Jo/baseball-analysis/lib/serviceutil"
	"github.com/Hawk-Jo/baseball-analysis/services/collector"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"
)

func init() {
	rootCmd.AddCommand(runsCmd)
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Lists archived collection runs.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		if cfg.ArchiveDB == "" {
			serviceutil.Fatal(
				"archiving is not configured",
				errors.New("set archive_db in kbostats.json5"),
			)
		}

		database, err := sql.Open("sqlite", cfg.ArchiveDB)
		if err != nil {
			serviceutil.Fatal("failed to open archive database", err)
		}
		defer database.Close()

		store, err := collector.NewStore(database)
		if err != nil {
			serviceutil.Fatal("failed to initialize archive store", err)
		}

		runs, err := store.ListRuns(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list runs", err)
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"id", "domain", "team", "started", "records"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.ID, run.Domain, run.Team,
				run.StartedAt.Format("2006-01-02 15:04:05"),
				run.RecordCount,
			})
		}
		t.Render()
	},
}
