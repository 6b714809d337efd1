package main

import (
	"context"

	"github.com/Hawk-Jo/baseball-analysis/cmd/kbostats/commands"
	"github.com/Hawk-Jo/baseball-analysis/lib/serviceutil"
	"github.com/Hawk-Jo/baseball-analysis/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	t, err := telemetry.SetupFromEnv(ctx, "kbostats")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InitSlog(false)
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
