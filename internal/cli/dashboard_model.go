package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rvaughn/taskdesk/internal/board"
	"github.com/rvaughn/taskdesk/internal/cli/formatter"
	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/rvaughn/taskdesk/internal/notify"
	"github.com/rvaughn/taskdesk/internal/service"
)

// feedMsg carries the result of one background refresh.
type feedMsg struct {
	result service.FeedResult
}

// hubEventMsg carries one notification from the hub subscription.
type hubEventMsg struct {
	ev notify.Event
	ok bool
}

// clearToastMsg expires the transient status-bar message.
type clearToastMsg struct{}

const toastTTL = 4 * time.Second

// dashboardModel is the bubbletea model behind both role dashboards.
// All list shaping goes through the binder; the model only owns input
// state, the fetch lifecycle and rendering.
type dashboardModel struct {
	app    *App
	viewer domain.Profile

	binder *board.Binder
	scheme board.CategoryScheme
	tabs   []string
	tabIdx int
	cursor int

	search      textinput.Model
	searching   bool
	tabFiltered bool

	spin    spinner.Model
	loading bool
	toast   string

	events <-chan notify.Event
	cancel func()

	width    int
	height   int
	quitting bool
}

func newDashboardModel(app *App, viewer domain.Profile) dashboardModel {
	scheme := board.SchemeFor(viewer.Role)

	ti := textinput.New()
	ti.Placeholder = "title, subject, name or status"
	ti.Prompt = "/"
	ti.CharLimit = 64
	ti.Width = 32

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)

	events := (<-chan notify.Event)(nil)
	cancel := func() {}
	if app.Hub != nil {
		events, cancel = app.Hub.Subscribe()
	}

	return dashboardModel{
		app:     app,
		viewer:  viewer,
		binder:  board.NewBinder(viewer.Role),
		scheme:  scheme,
		tabs:    scheme.Names(),
		search:  ti,
		spin:    sp,
		loading: true,
		events:  events,
		cancel:  cancel,
	}
}

// ── commands ─────────────────────────────────────────────────────────

func (m dashboardModel) refreshCmd() tea.Cmd {
	app, viewer := m.app, m.viewer
	return func() tea.Msg {
		return feedMsg{result: app.Feed.Refresh(context.Background(), viewer)}
	}
}

func (m dashboardModel) waitEventCmd() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		return hubEventMsg{ev: ev, ok: ok}
	}
}

func clearToastCmd() tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

// ── bubbletea interface ──────────────────────────────────────────────

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd(), m.waitEventCmd())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case feedMsg:
		// A result superseded by a newer refresh must be discarded,
		// whatever it carries.
		if msg.result.Stale {
			return m, nil
		}
		m.loading = false
		if msg.result.Err != nil {
			// Keep the last good list on screen, surface the failure
			// as a transient toast.
			m.toast = fmt.Sprintf("refresh failed: %v", msg.result.Err)
			return m, clearToastCmd()
		}
		m.binder.SetRecords(msg.result.Projects)
		m.clampCursor()
		return m, nil

	case hubEventMsg:
		if !msg.ok {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.waitEventCmd(), m.spin.Tick)

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.Type {
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.search.Reset()
			m.binder.SetSearch("")
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.binder.SetSearch(m.search.Value())
		m.clampCursor()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case "tab", "right", "l":
		m.tabIdx = (m.tabIdx + 1) % len(m.tabs)
		m.cursor = 0
		if m.tabFiltered {
			m.applyTabFilter()
		}
		return m, nil

	case "shift+tab", "left", "h":
		m.tabIdx = (m.tabIdx - 1 + len(m.tabs)) % len(m.tabs)
		m.cursor = 0
		if m.tabFiltered {
			m.applyTabFilter()
		}
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "s":
		m.binder.CycleSortKey()
		return m, nil

	case "o":
		m.binder.FlipSortDir()
		return m, nil

	case "u":
		m.binder.CycleUrgency()
		return m, nil

	case "f":
		m.tabFiltered = !m.tabFiltered
		if m.tabFiltered {
			m.applyTabFilter()
		} else {
			m.binder.ClearStatuses()
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.refreshCmd(), m.spin.Tick)
	}

	return m, nil
}

// applyTabFilter restricts the status filter to the active category's
// statuses.
func (m *dashboardModel) applyTabFilter() {
	m.binder.ClearStatuses()
	for _, s := range m.scheme[m.tabIdx].Statuses {
		m.binder.ToggleStatus(s)
	}
}

func (m *dashboardModel) clampCursor() {
	rows := m.activeRows(time.Now())
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *dashboardModel) activeRows(now time.Time) []board.ProjectView {
	snap := m.binder.Snapshot(now)
	return snap.Categories[m.tabs[m.tabIdx]]
}

// ── rendering ────────────────────────────────────────────────────────

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	now := time.Now()
	snap := m.binder.Snapshot(now)

	var b strings.Builder
	b.WriteString(m.headerLine() + "\n")
	b.WriteString(m.tabBar(snap) + "\n\n")
	b.WriteString(m.listArea(snap, now) + "\n\n")
	b.WriteString(m.statusLine() + "\n")
	b.WriteString(m.helpLine())
	return b.String()
}

func (m dashboardModel) headerLine() string {
	title := "Doer Dashboard"
	if m.viewer.Role == domain.RoleSupervisor {
		title = "Supervisor Dashboard"
	}
	return formatter.Header(title) + "  " + formatter.Dim(m.viewer.DisplayName)
}

func (m dashboardModel) tabBar(snap board.Snapshot) string {
	parts := make([]string, 0, len(m.tabs))
	for i, name := range m.tabs {
		label := fmt.Sprintf("%s (%d)", name, snap.Totals[name])
		if i == m.tabIdx {
			parts = append(parts, formatter.StyleHeader.Render(label))
		} else {
			parts = append(parts, formatter.Dim(label))
		}
	}
	return strings.Join(parts, formatter.Dim("  │  "))
}

func (m dashboardModel) listArea(snap board.Snapshot, now time.Time) string {
	rows := snap.Categories[m.tabs[m.tabIdx]]
	if len(rows) == 0 {
		if m.loading {
			return m.spin.View() + formatter.Dim(" loading…")
		}
		return formatter.Dim("Nothing here.")
	}

	var b strings.Builder
	for i, v := range rows {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		line := fmt.Sprintf("%s%s  %s  %s  %s  %s",
			marker,
			formatter.Dim(formatter.PadRight(v.ShortID, 9)),
			formatter.Bold(formatter.PadRight(formatter.Truncate(v.Title, 30), 30)),
			formatter.MoneyStyled(v.Payout),
			formatter.DeadlineStyled(v.Deadline, now),
			formatter.StatusPill(v.Status),
		)
		if v.Urgent {
			line += " " + formatter.UrgentBadge()
		}
		b.WriteString(line)
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m dashboardModel) statusLine() string {
	fs := m.binder.Filter()

	dir := "↑"
	if fs.SortDir == board.Descending {
		dir = "↓"
	}
	parts := []string{fmt.Sprintf("sort %s %s", fs.SortKey, dir)}

	switch fs.Urgency {
	case board.UrgencyOnly:
		parts = append(parts, "urgent only")
	case board.UrgencyExclude:
		parts = append(parts, "urgent hidden")
	}
	if m.tabFiltered {
		parts = append(parts, "tab filter")
	}
	if m.searching {
		parts = append(parts, m.search.View())
	} else if q := strings.TrimSpace(m.search.Value()); q != "" {
		parts = append(parts, fmt.Sprintf("search %q", q))
	}

	line := formatter.Dim(strings.Join(parts, "  ·  "))
	if m.loading {
		line += "  " + m.spin.View() + formatter.Dim("refreshing")
	}
	if m.toast != "" {
		line += "  " + formatter.StyleRed.Render(m.toast)
	}
	return line
}

func (m dashboardModel) helpLine() string {
	return formatter.Dim("tab switch · / search · s sort · o direction · u urgency · f status · r refresh · q quit")
}
