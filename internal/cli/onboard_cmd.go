package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newOnboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "onboard",
		Short: "Interactive profile setup and activation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("onboarding needs an interactive terminal, use 'taskdesk profile setup' instead")
			}
			return runOnboardWizard(context.Background(), app)
		},
	}
}

func runOnboardWizard(ctx context.Context, app *App) error {
	var (
		role    string
		name    string
		email   string
		confirm bool
	)

	// Prefill from an existing profile so re-running fixes typos
	// instead of starting over.
	if existing, err := app.Profiles.Get(ctx); err == nil && existing != nil {
		role = string(existing.Role)
		name = existing.DisplayName
		email = existing.Email
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How will you use taskdesk?").
				Options(
					huh.NewOption("Doer — take on projects and earn", string(domain.RoleDoer)),
					huh.NewOption("Supervisor — post and oversee projects", string(domain.RoleSupervisor)),
				).
				Value(&role),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Display name").
				Placeholder("Priya N.").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("display name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Email (optional)").
				Placeholder("you@example.com").
				Value(&email),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Activate this account now?").
				Description("You can browse without activating, but dashboards stay locked.").
				Affirmative("Activate").
				Negative("Later").
				Value(&confirm),
		),
	).WithTheme(taskdeskHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	profile, err := app.Profiles.Setup(ctx, domain.Role(role), strings.TrimSpace(name), strings.TrimSpace(email))
	if err != nil {
		return err
	}

	if confirm {
		if err := app.Profiles.Activate(ctx); err != nil {
			return err
		}
		fmt.Printf("Welcome, %s. Your %s account is active.\n", profile.DisplayName, profile.Role)
		fmt.Printf("Run %s to open your dashboard.\n", formatter.Bold("taskdesk "+string(profile.Role)))
		return nil
	}

	fmt.Printf("Profile saved for %s. Run 'taskdesk onboard' again to activate.\n", profile.DisplayName)
	return nil
}
