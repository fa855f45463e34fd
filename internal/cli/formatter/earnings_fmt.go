package formatter

import (
	"fmt"
	"strings"
)

// EarningsData holds the aggregated figures for the earnings card.
type EarningsData struct {
	SettledNet float64
	PendingNet float64
	Gross      float64
	Commission float64
	Projects   int
}

// FormatEarnings renders the doer earnings summary card.
func FormatEarnings(d EarningsData) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("SETTLED   "), StyleGreen.Render(Money(d.SettledNet))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("PENDING   "), StyleYellow.Render(Money(d.PendingNet))))
	b.WriteString(Dim(strings.Repeat("─", 24)) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("GROSS     "), StyleFg.Render(Money(d.Gross))))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("COMMISSION"), StyleRed.Render("-"+Money(d.Commission))))
	b.WriteString(fmt.Sprintf("%s  %s", StyleDim.Render("PROJECTS  "), StyleFg.Render(fmt.Sprintf("%d", d.Projects))))

	return RenderBox("Earnings", b.String())
}
