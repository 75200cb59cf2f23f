package main

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(c *cli) *cobra.Command {
	var overview bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard summary as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if overview {
				view, err := c.services.Dashboard.DepartmentOverview(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), view)
			}

			summary, err := c.services.Dashboard.Summary(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}

	cmd.Flags().BoolVar(&overview, "departments", false, "Print the department overview instead")
	return cmd
}
