package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newDoerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doer",
		Short: "Open the doer dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app, domain.RoleDoer)
		},
	}
}

func newSupervisorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "supervisor",
		Short: "Open the supervisor dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app, domain.RoleSupervisor)
		},
	}
}

func runDashboard(app *App, role domain.Role) error {
	ctx := context.Background()
	profile, err := requireRole(ctx, app, role)
	if err != nil {
		return err
	}
	if !profile.Activated {
		return fmt.Errorf("account not activated, run 'taskdesk onboard' first")
	}
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("the dashboard needs an interactive terminal")
	}

	p := tea.NewProgram(newDashboardModel(app, *profile), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
