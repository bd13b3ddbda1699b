package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stefan-k/cobald/internal/application"
	"github.com/stefan-k/cobald/internal/domain"
)

func newLimitsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Read and write negotiator concurrency limits",
	}

	cmd.AddCommand(
		newLimitsListCmd(app),
		newLimitsGetCmd(app),
		newLimitsSetCmd(app),
		newLimitsApplyCmd(app),
		newLimitsExportCmd(app),
	)

	return cmd
}

func newLimitsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every concurrency limit the negotiator enforces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limits, err := app.service.ListLimits(cmd.Context())
			if err != nil {
				return err
			}

			return writeValues(cmd, limits, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newLimitsGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get RESOURCE",
		Short: "Print the limit of a resource, falling back to its parent group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.service.GetLimit(cmd.Context(), domain.ResourceID(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatNumber(value))
			return err
		},
	}
}

func newLimitsSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set RESOURCE VALUE",
		Short: "Ask the negotiator to enforce a new limit (best effort)",
		Long:  "Ask the negotiator to enforce a new limit. The value is truncated to a whole number on the wire. Failures are logged and do not change the exit status.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid limit value %q: %w", args[1], err)
			}

			resource := domain.ResourceID(args[0])
			if err := app.service.SetLimit(cmd.Context(), resource, value); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Requested limit %s = %d\n", resource, int64(value))
			return nil
		},
	}
}

func newLimitsApplyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "apply PLAN",
		Short: "Apply every limit of a TOML limit plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.service.ApplyPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Applied %d limits from %s\n", len(plan.Limits), args[0])
			return nil
		},
	}
}

func newLimitsExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export PLAN",
		Short: "Write the current limits to a TOML limit plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.service.ExportPlan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d limits to %s\n", len(plan.Limits), args[0])
			return nil
		},
	}
}

type valueOutput struct {
	Resource domain.ResourceID `json:"resource"`
	Value    float64           `json:"value"`
}

func writeValues(cmd *cobra.Command, values []application.ResourceValue, asJSON bool) error {
	if asJSON {
		out := make([]valueOutput, 0, len(values))
		for _, value := range values {
			out = append(out, valueOutput{Resource: value.Resource, Value: value.Value})
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(values) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "none")
		return err
	}

	for _, value := range values {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", value.Resource, formatNumber(value.Value)); err != nil {
			return err
		}
	}

	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
