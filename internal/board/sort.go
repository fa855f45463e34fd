package board

import (
	"sort"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
)

type SortKey string

const (
	SortDeadline SortKey = "deadline"
	SortPrice    SortKey = "price"
	SortStatus   SortKey = "status"
	SortCreated  SortKey = "created"
)

type SortDir int

const (
	Ascending SortDir = iota
	Descending
)

// SortKeys lists the selectable keys in the order the dashboards
// cycle through them.
var SortKeys = []SortKey{SortDeadline, SortPrice, SortStatus, SortCreated}

// statusOrdinal maps every status to its position in the workflow.
// Sorting by status uses this table, not the status string: the
// alphabet puts "assigned" before "draft", which is meaningless on a
// board.
var statusOrdinal = func() map[domain.ProjectStatus]int {
	m := make(map[domain.ProjectStatus]int, len(domain.AllStatuses))
	for i, s := range domain.AllStatuses {
		m[s] = i
	}
	return m
}()

// StatusOrdinal returns the workflow position of s. Unknown statuses
// sort after every known one.
func StatusOrdinal(s domain.ProjectStatus) int {
	if ord, ok := statusOrdinal[s]; ok {
		return ord
	}
	return len(domain.AllStatuses)
}

// compare orders two views by key, ascending. Returns <0, 0 or >0.
func compare(a, b ProjectView, key SortKey) int {
	switch key {
	case SortPrice:
		switch {
		case a.Payout < b.Payout:
			return -1
		case a.Payout > b.Payout:
			return 1
		}
		return 0
	case SortStatus:
		return StatusOrdinal(a.Status) - StatusOrdinal(b.Status)
	case SortCreated:
		return compareTime(a.CreatedAt, b.CreatedAt)
	default: // SortDeadline
		return compareTime(a.Deadline, b.Deadline)
	}
}

func compareTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

// SortViews returns a new slice ordered by key and direction. The
// sort is stable so ties keep their incoming order across re-renders.
func SortViews(items []ProjectView, key SortKey, dir SortDir) []ProjectView {
	out := make([]ProjectView, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], key)
		if dir == Descending {
			c = -c
		}
		return c < 0
	})
	return out
}
