package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stefan-k/cobald/internal/domain"
)

func newUsageCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Read concurrency usage reported by the negotiator",
	}

	cmd.AddCommand(
		newUsageListCmd(app),
		newUsageGetCmd(app),
	)

	return cmd
}

func newUsageListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the running units per concurrency limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			usage, err := app.service.ListUsage(cmd.Context())
			if err != nil {
				return err
			}

			return writeValues(cmd, usage, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newUsageGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE",
		Short: "Print the running units of a resource, falling back to its parent group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.service.GetUsage(cmd.Context(), domain.ResourceID(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatNumber(value))
			return err
		},
	}
}
