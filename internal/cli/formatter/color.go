package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rvaughn/taskdesk/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// statusStyle maps each project status to a phase color: blue for intake
// and payment, purple for the assignment pool, green for active work,
// yellow for review phases, dim for terminal states, red for cancellation.
func statusStyle(status domain.ProjectStatus) lipgloss.Style {
	switch status {
	case domain.StatusDraft, domain.StatusSubmitted, domain.StatusAnalyzing,
		domain.StatusQuoted, domain.StatusPaymentPending, domain.StatusPaid:
		return StyleBlue
	case domain.StatusAssigning:
		return StylePurple
	case domain.StatusAssigned, domain.StatusInProgress,
		domain.StatusRevisionRequested, domain.StatusInRevision:
		return StyleGreen
	case domain.StatusSubmittedForQC, domain.StatusQCInProgress,
		domain.StatusQCRejected, domain.StatusQCApproved:
		return StyleYellow
	case domain.StatusDelivered, domain.StatusCompleted, domain.StatusAutoApproved:
		return StyleDim
	case domain.StatusCancelled, domain.StatusRefunded:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	label := StatusLabel(status)
	switch status {
	case domain.StatusCompleted, domain.StatusAutoApproved, domain.StatusDelivered:
		return statusStyle(status).Render("✔ " + label)
	case domain.StatusCancelled, domain.StatusRefunded:
		return statusStyle(status).Render("✖ " + label)
	default:
		return statusStyle(status).Render("● " + label)
	}
}

// StatusLabel returns a human-readable label for a project status,
// e.g. "submitted_for_qc" becomes "Submitted For QC".
func StatusLabel(status domain.ProjectStatus) string {
	words := strings.Split(string(status), "_")
	for i, w := range words {
		if w == "qc" {
			words[i] = "QC"
			continue
		}
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// RoleBadge returns a capitalized, purple-styled role label.
func RoleBadge(r domain.Role) string {
	label := string(r)
	if len(label) > 0 {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	return StylePurple.Render(label)
}

// UrgentBadge returns the marker shown next to projects due soon.
func UrgentBadge() string {
	return StyleRed.Render("⚑ urgent")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
