package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/rvaughn/taskdesk/internal/board"
	"github.com/rvaughn/taskdesk/internal/domain"
)

// FormatProjectTable renders a list of project view rows as an aligned
// table. The reference time feeds the relative deadline column.
func FormatProjectTable(views []board.ProjectView, now time.Time) string {
	headers := []string{"ID", "TITLE", "SUBJECT", "WITH", "PAYOUT", "DEADLINE", "STATUS"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		deadline := DeadlineStyled(v.Deadline, now)
		if v.Urgent {
			deadline += " " + UrgentBadge()
		}
		rows = append(rows, []string{
			v.ShortID,
			Bold(Truncate(v.Title, 32)),
			StylePurple.Render(v.Subject),
			StyleFg.Render(v.Counterparty),
			MoneyStyled(v.Payout),
			deadline,
			StatusPill(v.Status),
		})
	}

	return RenderTable(headers, rows)
}

// FormatProjectList renders project views inside a titled box.
func FormatProjectList(views []board.ProjectView, now time.Time) string {
	if len(views) == 0 {
		return Dim("No projects found.")
	}
	return RenderBox("Projects", FormatProjectTable(views, now))
}

// FormatProjectInspect renders a single-project detail card.
func FormatProjectInspect(p *domain.Project, now time.Time) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(StylePurple.Render(subjectOrDefault(p.Subject)) + "\n\n")

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS   "), StatusPill(p.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("ID       "), Dim(p.DisplayID())))
	b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("DEADLINE "),
		DeadlineStyled(p.Deadline, now), Dim("("+p.Deadline.Format("Jan 2, 2006")+")")))

	if p.Payout != nil {
		net := p.NetPayout()
		b.WriteString(fmt.Sprintf("%s  %s %s\n", StyleDim.Render("PAYOUT   "),
			MoneyStyled(*p.Payout), Dim(fmt.Sprintf("(net %s after %.0f%% commission)", Money(net), p.CommissionPct))))
	} else {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PAYOUT   "), Dim("not quoted")))
	}

	if p.SupervisorName != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SUPERVSR "), StyleFg.Render(p.SupervisorName)))
	}
	if p.DoerName != "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DOER     "), StyleFg.Render(p.DoerName)))
	} else if p.DoerID == "" {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DOER     "), Dim("unassigned")))
	}

	if p.WordCount > 0 {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SCOPE    "),
			StyleFg.Render(fmt.Sprintf("%d words / %d pages", p.WordCount, p.PageCount))))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("CREATED  "), HumanTimestamp(p.CreatedAt)))

	if p.Description != "" {
		b.WriteString("\n" + StyleFg.Render(p.Description) + "\n")
	}

	return RenderBox("", b.String())
}

func subjectOrDefault(s string) string {
	if s == "" {
		return "General"
	}
	return s
}
