package main

import (
	"encoding/json"
	"io"

	"hris-dashboard/internal/app"
	"hris-dashboard/internal/bootstrap"
	"hris-dashboard/internal/config"
	"hris-dashboard/internal/events"
	"hris-dashboard/internal/fixtures"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli carries what the subcommands share once the root has run.
type cli struct {
	fixturesDir string
	latency     bool
	verbose     bool

	services *app.Services
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "hrisctl",
		Short:         "Inspect the HRIS dashboard data from the terminal",
		Long:          `hrisctl loads the same fixtures as the API server and runs the service layer in-process.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	_ = godotenv.Load()
	cfg := config.Load()

	root.PersistentFlags().StringVar(&c.fixturesDir, "fixtures", cfg.FixturesDir, "Directory of YAML fixtures (embedded set when empty)")
	root.PersistentFlags().BoolVar(&c.latency, "latency", false, "Simulate per-operation service latency")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newStatsCmd(c), newListCmd(c))
	return root
}

func (c *cli) setup() error {
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger, err := bootstrap.NewLogger(level, false)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)

	cfg := config.Load()
	cfg.FixturesDir = c.fixturesDir
	cfg.SimulatedLatency = c.latency

	set, err := fixtures.Load(cfg.FixturesDir)
	if err != nil {
		return err
	}
	c.services, err = app.NewServices(cfg, set, events.Noop(), logger)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
