package cli

import (
	"context"
	"fmt"

	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newEarningsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "earnings",
		Short: "Show the doer earnings summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := requireRole(ctx, app, domain.RoleDoer)
			if err != nil {
				return err
			}

			summary, err := app.Earnings.Summary(ctx, profile.ID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatEarnings(formatter.EarningsData{
				SettledNet: summary.SettledNet,
				PendingNet: summary.PendingNet,
				Gross:      summary.Gross,
				Commission: summary.Commission,
				Projects:   summary.Projects,
			}))
			return nil
		},
	}
}
