package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spektr-org/fundview/config"
	"github.com/spektr-org/fundview/engine"
	"github.com/spektr-org/fundview/render"
	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// FUNDVIEW CLI - funding transparency dashboard
// ============================================================================

const version = "0.3.0"

// app carries the flags and the state built from them before a subcommand runs.
type app struct {
	// Global flags
	configPath string
	endpoint   string
	workbook   string
	demo       bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "fundview",
		Short: "fundview - funding transparency dashboard",
		Long: `fundview renders a single-page funding dashboard from a published
spreadsheet. Every render pass fetches each dataset independently; a dataset
that fails to load leaves its panel at the placeholder.

Data source precedence: --demo, then --workbook, then --endpoint
(or FUNDVIEW_ENDPOINT, or "endpoint" in the config file).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "fundview.yaml", "Config file (missing file = defaults)")
	root.PersistentFlags().StringVar(&a.endpoint, "endpoint", "", "Spreadsheet proxy base URL")
	root.PersistentFlags().StringVar(&a.workbook, "workbook", "", "Read datasets from a local .xlsx export instead")
	root.PersistentFlags().BoolVar(&a.demo, "demo", false, "Use the built-in sample data")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newRowsCmd(a))
	root.AddCommand(&cobra.Command{
		Use:               "version",
		Short:             "Print version and exit",
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fundview %s\n", version)
		},
	})
	return root
}

// setup loads the config, lets flags win over it, validates and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.endpoint != "" {
		cfg.Endpoint = a.endpoint
	}
	if a.workbook != "" {
		cfg.Workbook = a.workbook
	}
	if a.demo {
		cfg.Demo = true
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(cfg.GetLogLevel())
		a.logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	return nil
}

// newSource picks the row source the config asks for.
func (a *app) newSource() source.Source {
	switch {
	case a.cfg.Demo:
		a.logger.Debug("using demo data")
		return source.Demo()
	case a.cfg.Workbook != "":
		a.logger.Debug("using workbook", zap.String("path", a.cfg.Workbook))
		return source.NewWorkbookSource(a.cfg.Workbook)
	}

	opts := []source.HTTPOption{
		source.WithFormat(source.Format(a.cfg.Format)),
		source.WithLogger(a.logger),
		source.WithHTTPClient(&http.Client{Timeout: a.cfg.GetTimeout()}),
	}
	if a.cfg.RateLimit > 0 {
		opts = append(opts, source.WithLimiter(rate.NewLimiter(rate.Limit(a.cfg.RateLimit), 1)))
	}
	a.logger.Debug("using endpoint", zap.String("endpoint", a.cfg.Endpoint))
	return source.NewHTTPSource(a.cfg.Endpoint, opts...)
}

// newPage returns a fresh page for one page load.
func (a *app) newPage() *render.Page {
	return render.NewPage(
		render.WithTitle(a.cfg.Title),
		render.WithChartScript(a.cfg.ChartScript),
	)
}

func (a *app) newDashboard(src source.Source, surface engine.Surface) *engine.Dashboard {
	return engine.New(src, surface,
		engine.WithLogger(a.logger),
		engine.WithPalette(a.cfg.Palette),
		engine.WithDocuments(a.cfg.Documents),
		engine.WithDatasets(a.cfg.Datasets),
		engine.WithConcurrency(a.cfg.Concurrency),
	)
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
