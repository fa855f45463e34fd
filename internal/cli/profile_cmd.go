package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetupCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := requireProfile(context.Background(), app)
			if err != nil {
				return err
			}

			activated := formatter.StyleYellow.Render("○ not activated")
			if profile.Activated {
				activated = formatter.StyleGreen.Render("● activated")
			}

			var b strings.Builder
			b.WriteString(formatter.Bold(profile.DisplayName) + "  " + formatter.RoleBadge(profile.Role) + "\n\n")
			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.StyleDim.Render("EMAIL "), profile.Email))
			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.StyleDim.Render("STATE "), activated))
			b.WriteString(fmt.Sprintf("%s  %s", formatter.StyleDim.Render("SINCE "), formatter.HumanDate(profile.CreatedAt)))

			fmt.Printf("%s\n", formatter.RenderBox("Profile", b.String()))
			return nil
		},
	}
}

func newProfileSetupCmd(app *App) *cobra.Command {
	var role, name, email string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or replace the local profile without the wizard",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := domain.Role(strings.ToLower(role))
			if !domain.IsValidRole(r) {
				return fmt.Errorf("invalid role %q, want doer or supervisor", role)
			}

			profile, err := app.Profiles.Setup(context.Background(), r, name, email)
			if err != nil {
				return err
			}

			fmt.Printf("Profile saved for %s (%s)\n", profile.DisplayName, profile.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Profile role: doer or supervisor")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("role")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
