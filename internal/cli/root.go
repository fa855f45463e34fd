package cli

import (
	"github.com/rvaughn/taskdesk/internal/config"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects service.ProjectService
	Feed     service.FeedService
	Earnings service.EarningsService
	Chat     service.ChatService
	Profiles service.ProfileService

	Hub    *notify.Hub
	Config config.Config

	// IsInteractive reports whether stdin is attached to a terminal.
	// Dashboard commands refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "taskdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskdesk",
		Short: "Task marketplace client for doers and supervisors",
	}

	root.AddCommand(
		newProjectCmd(app),
		newDoerCmd(app),
		newSupervisorCmd(app),
		newEarningsCmd(app),
		newChatCmd(app),
		newOnboardCmd(app),
		newProfileCmd(app),
	)

	return root
}
