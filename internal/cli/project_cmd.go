package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rvaughn/taskdesk/internal/board"
	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectAddCmd(app),
		newProjectListCmd(app),
		newProjectInspectCmd(app),
	)

	// Workflow transitions, one subcommand per verb.
	cmd.AddCommand(
		newProjectQuoteCmd(app),
		newProjectAssignCmd(app),
		newTransitionCmd(app, "submit", "Submit a draft project for analysis", app.Projects.Submit),
		newTransitionCmd(app, "analyze", "Start analyzing a submitted project", app.Projects.Analyze),
		newTransitionCmd(app, "request-payment", "Request payment for a quoted project", app.Projects.RequestPayment),
		newTransitionCmd(app, "confirm-payment", "Confirm payment was received", app.Projects.ConfirmPayment),
		newTransitionCmd(app, "open", "Open a paid project for assignment", app.Projects.OpenForAssignment),
		newTransitionCmd(app, "start", "Start working on an assigned project", app.Projects.Start),
		newTransitionCmd(app, "submit-qc", "Submit finished work for quality control", app.Projects.SubmitForQC),
		newTransitionCmd(app, "start-qc", "Start the quality control review", app.Projects.StartQC),
		newTransitionCmd(app, "approve-qc", "Approve the quality control review", app.Projects.ApproveQC),
		newTransitionCmd(app, "reject-qc", "Reject the quality control review", app.Projects.RejectQC),
		newTransitionCmd(app, "rework", "Send QC-rejected work back to the doer", app.Projects.Rework),
		newTransitionCmd(app, "deliver", "Deliver approved work to the supervisor", app.Projects.Deliver),
		newTransitionCmd(app, "request-revision", "Request a revision of delivered work", app.Projects.RequestRevision),
		newTransitionCmd(app, "start-revision", "Start working on a requested revision", app.Projects.StartRevision),
		newTransitionCmd(app, "complete", "Mark a delivered project complete", app.Projects.Complete),
		newTransitionCmd(app, "auto-approve", "Auto-approve delivered work after the review window", app.Projects.AutoApprove),
		newTransitionCmd(app, "cancel", "Cancel a project", app.Projects.Cancel),
		newTransitionCmd(app, "refund", "Refund a cancelled project", app.Projects.Refund),
	)

	return cmd
}

func newProjectAddCmd(app *App) *cobra.Command {
	var shortID, title, subject, description, deadline string
	var words, pages int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := requireRole(ctx, app, domain.RoleSupervisor)
			if err != nil {
				return err
			}

			due, err := time.Parse("2006-01-02", deadline)
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", deadline, err)
			}

			p := &domain.Project{
				ID:             uuid.New().String(),
				ShortID:        strings.ToUpper(shortID),
				Title:          title,
				Subject:        subject,
				Description:    description,
				Deadline:       due,
				SupervisorID:   profile.ID,
				SupervisorName: profile.DisplayName,
				WordCount:      words,
				PageCount:      pages,
			}

			if err := app.Projects.Create(ctx, p); err != nil {
				return err
			}

			fmt.Printf("Created project %s [%s]\n", p.Title, p.ShortID)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (2-4 uppercase letters + 3-5 digits, e.g. TSK-101)")
	cmd.Flags().StringVar(&title, "title", "", "Project title")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject area")
	cmd.Flags().StringVar(&description, "description", "", "Longer description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&words, "words", 0, "Word count")
	cmd.Flags().IntVar(&pages, "pages", 0, "Page count")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("deadline")

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var search string
	var statuses []string
	var desc, urgentOnly bool
	var sortKey sortKeyValue

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := requireProfile(ctx, app)
			if err != nil {
				return err
			}

			projects, err := app.Projects.List(ctx)
			if err != nil {
				return err
			}

			fs := board.NewFilterState()
			fs.Search = search
			for _, s := range statuses {
				status := domain.ProjectStatus(strings.ToLower(s))
				if !domain.IsValidStatus(status) {
					return fmt.Errorf("unknown status %q", s)
				}
				fs.ToggleStatus(status)
			}
			if urgentOnly {
				fs.Urgency = board.UrgencyOnly
			}
			if sortKey.set {
				fs.SortKey = sortKey.key
			}
			if desc {
				fs.SortDir = board.Descending
			}

			now := time.Now()
			views := board.TransformAll(projects, profile.Role, now)
			views = board.ApplyFilter(views, fs, now)
			views = board.SortViews(views, fs.SortKey, fs.SortDir)

			fmt.Printf("%s\n", formatter.FormatProjectList(views, now))
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Filter by substring match on title, subject, name or status")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Filter by status (repeatable)")
	cmd.Flags().Var(&sortKey, "sort", "Sort key: "+sortKeyNames())
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&urgentOnly, "urgent", false, "Only projects due within three days")

	return cmd
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ID",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatProjectInspect(p, time.Now()))
			return nil
		},
	}
}

func newProjectQuoteCmd(app *App) *cobra.Command {
	var payout float64

	cmd := &cobra.Command{
		Use:   "quote ID",
		Short: "Attach a payout quote to an analyzed project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Projects.Quote(ctx, projectID, payout); err != nil {
				return err
			}
			fmt.Printf("Quoted %s at %s\n", args[0], formatter.Money(payout))
			return nil
		},
	}

	cmd.Flags().Float64Var(&payout, "payout", 0, "Payout amount in dollars")
	_ = cmd.MarkFlagRequired("payout")

	return cmd
}

func newProjectAssignCmd(app *App) *cobra.Command {
	var toSelf bool
	var doerID, doerName string

	cmd := &cobra.Command{
		Use:   "assign ID",
		Short: "Assign an open project to a doer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if toSelf {
				profile, err := requireRole(ctx, app, domain.RoleDoer)
				if err != nil {
					return err
				}
				doerID = profile.ID
				doerName = profile.DisplayName
			}
			if doerID == "" {
				return fmt.Errorf("either --self or --doer is required")
			}

			if err := app.Projects.Assign(ctx, projectID, doerID, doerName); err != nil {
				return err
			}
			fmt.Printf("Assigned %s to %s\n", args[0], doerName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&toSelf, "self", false, "Claim the project for the local doer profile")
	cmd.Flags().StringVar(&doerID, "doer", "", "Doer ID to assign")
	cmd.Flags().StringVar(&doerName, "doer-name", "", "Doer display name")

	return cmd
}

// newTransitionCmd builds a one-argument subcommand that applies a
// single workflow transition and prints the resulting status.
func newTransitionCmd(app *App, use, short string, fn func(ctx context.Context, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			projectID, err := resolveProjectID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := fn(ctx, projectID); err != nil {
				return err
			}
			p, err := app.Projects.GetByID(ctx, projectID)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", p.DisplayID(), formatter.StatusPill(p.Status))
			return nil
		},
	}
}
