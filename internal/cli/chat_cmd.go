package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Message the other side of a project",
	}

	cmd.AddCommand(
		newChatLogCmd(app),
		newChatSendCmd(app),
	)

	return cmd
}

func newChatLogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log ID",
		Short: "Show the message thread for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := requireProfile(ctx, app)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			msgs, err := app.Chat.List(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatThread(msgs, profile.Role))
			return nil
		},
	}
}

func newChatSendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "send ID MESSAGE...",
		Short: "Send a message on a project",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := requireProfile(ctx, app)
			if err != nil {
				return err
			}
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			body := strings.Join(args[1:], " ")
			if _, err := app.Chat.Send(ctx, projectID, *profile, body); err != nil {
				return err
			}

			fmt.Println("Sent.")
			return nil
		},
	}
}
