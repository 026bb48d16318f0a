package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spektr-org/fundview/engine"
	"github.com/spektr-org/fundview/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out    string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Run one render pass and write the page",
		Long: `Runs every binder once against the configured source and writes the
resulting page as HTML (or, with --json, the mount contents and the pass report).`,
		Example: `  fundview --demo render --out dashboard.html
  fundview --endpoint https://opensheet.elk.sh/<sheet-id> render --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, report := a.renderPass(cmd.Context())

			var buf bytes.Buffer
			if asJSON {
				enc := json.NewEncoder(&buf)
				enc.SetIndent("", "  ")
				if err := enc.Encode(passDump{Report: report, Mounts: page.Snapshot()}); err != nil {
					return fmt.Errorf("failed to encode pass: %w", err)
				}
			} else if err := page.Render(&buf); err != nil {
				return err
			}

			if out == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			size := buf.Len()
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			a.logger.Info("page written",
				zap.String("path", out),
				zap.String("size", humanize.Bytes(uint64(size))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write mount contents and the pass report as JSON")
	return cmd
}

// passDump is the --json output of render.
type passDump struct {
	Report *engine.Report           `json:"report"`
	Mounts map[string]engine.Widget `json:"mounts"`
}

// renderPass is one page load: a fresh page, every binder once.
func (a *app) renderPass(ctx context.Context) (*render.Page, *engine.Report) {
	page := a.newPage()
	report := a.newDashboard(a.newSource(), page).Run(ctx)
	return page, report
}
