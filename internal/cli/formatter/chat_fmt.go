package formatter

import (
	"fmt"
	"strings"

	"github.com/rvaughn/taskdesk/internal/domain"
)

// FormatThread renders a project message thread, newest last. Messages
// from the viewer are right-aligned green, the counterparty's are
// left-aligned blue.
func FormatThread(msgs []*domain.Message, viewer domain.Role) string {
	if len(msgs) == 0 {
		return Dim("No messages yet.")
	}

	var b strings.Builder
	for i, m := range msgs {
		mine := m.Sender == viewer
		style := StyleBlue
		if mine {
			style = StyleGreen
		}
		who := RoleBadge(m.Sender)
		if mine {
			who = StyleGreen.Render("You")
		}
		b.WriteString(fmt.Sprintf("%s %s\n", who, Dim(HumanTimestamp(m.SentAt))))
		b.WriteString("  " + style.Render(m.Body))
		if i < len(msgs)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}
