package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	statusadapter "github.com/stefan-k/cobald/internal/adapters/render/status"
	"github.com/stefan-k/cobald/internal/application"
	"github.com/stefan-k/cobald/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	var resources []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show limits, usage and utilisation per resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids := make([]domain.ResourceID, 0, len(resources))
			for _, resource := range resources {
				ids = append(ids, domain.ResourceID(resource))
			}

			var report application.StatusReport
			query := func(ctx context.Context) error {
				var err error
				report, err = app.service.Status(ctx, ids)
				return err
			}

			if asJSON {
				if err := query(cmd.Context()); err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			wait := negotiatorQuery{pool: app.config.Pool, resources: ids}
			if err := waitForNegotiator(cmd.Context(), cmd.ErrOrStderr(), wait, app.now, query); err != nil {
				return err
			}

			rendered, err := app.statusRenderer(report, statusadapter.RenderOptions{
				Now:    app.now(),
				MaxAge: app.config.MaxAge,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringArrayVar(&resources, "resource", nil, "Resource to report (repeatable, default all known)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
