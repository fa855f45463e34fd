package board

import (
	"strings"
	"testing"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewOf(p domain.Project) ProjectView {
	return Transform(p, domain.RoleDoer, testNow)
}

func TestApplyFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	physics := makeProject("Physics Project", domain.StatusAssigned, testNow.Add(5*24*time.Hour))
	math := makeProject("Math Assignment", domain.StatusAssigned, testNow.Add(5*24*time.Hour))

	fs := NewFilterState()
	fs.Search = "math"

	out := ApplyFilter([]ProjectView{viewOf(physics), viewOf(math)}, fs, testNow)

	require.Len(t, out, 1)
	assert.Equal(t, "Math Assignment", out[0].Title)
}

func TestApplyFilter_SearchMatchesSubjectCounterpartyAndStatus(t *testing.T) {
	p := makeProject("Untitled", domain.StatusInRevision, testNow.Add(5*24*time.Hour))
	items := []ProjectView{viewOf(p)}

	for _, q := range []string{"physics", "PRIYA", "in_revision", "  untitled  "} {
		fs := NewFilterState()
		fs.Search = q
		assert.Len(t, ApplyFilter(items, fs, testNow), 1, "query %q should match", q)
	}

	fs := NewFilterState()
	fs.Search = "chemistry"
	assert.Empty(t, ApplyFilter(items, fs, testNow))
}

func TestApplyFilter_BlankSearchMatchesEverything(t *testing.T) {
	items := []ProjectView{viewOf(makeProject("A", domain.StatusAssigned, testNow.Add(24*time.Hour)))}

	fs := NewFilterState()
	fs.Search = "   "

	assert.Len(t, ApplyFilter(items, fs, testNow), 1)
}

func TestApplyFilter_EmptyStatusSetDisablesStatusPredicate(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("A", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("B", domain.StatusCompleted, testNow.Add(24*time.Hour))),
	}

	out := ApplyFilter(items, NewFilterState(), testNow)
	assert.Len(t, out, 2, "empty set means no filtering")
}

func TestApplyFilter_StatusSetMembership(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("A", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("B", domain.StatusCompleted, testNow.Add(24*time.Hour))),
		viewOf(makeProject("C", domain.StatusInProgress, testNow.Add(24*time.Hour))),
	}

	fs := NewFilterState()
	fs.ToggleStatus(domain.StatusAssigned)
	fs.ToggleStatus(domain.StatusInProgress)

	out := ApplyFilter(items, fs, testNow)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.True(t, fs.Statuses[v.Status], "every result is in the selected set")
	}
}

func TestApplyFilter_UrgencyTriState(t *testing.T) {
	soon := viewOf(makeProject("Soon", domain.StatusAssigned, testNow.Add(2*24*time.Hour)))
	later := viewOf(makeProject("Later", domain.StatusAssigned, testNow.Add(10*24*time.Hour)))
	items := []ProjectView{soon, later}

	fs := NewFilterState()
	assert.Len(t, ApplyFilter(items, fs, testNow), 2, "UrgencyAll keeps both")

	fs.Urgency = UrgencyOnly
	out := ApplyFilter(items, fs, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "Soon", out[0].Title)

	fs.Urgency = UrgencyExclude
	out = ApplyFilter(items, fs, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "Later", out[0].Title)
}

func TestApplyFilter_UrgencyUsesCurrentClockNotCachedFlag(t *testing.T) {
	// Transformed 8 days before its deadline, so the cached flag says
	// not urgent. Filtering 6 days later must see it as urgent.
	p := makeProject("Drift", domain.StatusAssigned, testNow.Add(8*24*time.Hour))
	v := Transform(p, domain.RoleDoer, testNow)
	require.False(t, v.Urgent)

	fs := NewFilterState()
	fs.Urgency = UrgencyOnly

	later := testNow.Add(6 * 24 * time.Hour)
	out := ApplyFilter([]ProjectView{v}, fs, later)
	assert.Len(t, out, 1, "urgency is recomputed at filter time")
}

func TestApplyFilter_PredicatesCombineWithAND(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("Math Assignment", domain.StatusAssigned, testNow.Add(2*24*time.Hour))),
		viewOf(makeProject("Math Quiz", domain.StatusCompleted, testNow.Add(2*24*time.Hour))),
		viewOf(makeProject("Math Homework", domain.StatusAssigned, testNow.Add(20*24*time.Hour))),
	}

	fs := NewFilterState()
	fs.Search = "math"
	fs.ToggleStatus(domain.StatusAssigned)
	fs.Urgency = UrgencyOnly

	out := ApplyFilter(items, fs, testNow)
	require.Len(t, out, 1)
	assert.Equal(t, "Math Assignment", out[0].Title)
}

func TestApplyFilter_EmptyInputYieldsEmptyOutput(t *testing.T) {
	fs := NewFilterState()
	fs.Search = "anything"

	out := ApplyFilter(nil, fs, testNow)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("B", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("A", domain.StatusCompleted, testNow.Add(48*time.Hour))),
	}
	titles := []string{items[0].Title, items[1].Title}

	fs := NewFilterState()
	fs.ToggleStatus(domain.StatusAssigned)
	_ = ApplyFilter(items, fs, testNow)

	assert.Equal(t, titles, []string{items[0].Title, items[1].Title})
}

func TestApplyFilter_SearchSoundness(t *testing.T) {
	// Every returned item carries the query as a substring of its
	// searchable text; no returned item lacks it.
	items := []ProjectView{
		viewOf(makeProject("Essay on Rome", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("Roman History", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("Greek History", domain.StatusAssigned, testNow.Add(24*time.Hour))),
	}

	fs := NewFilterState()
	fs.Search = "ROM"

	out := ApplyFilter(items, fs, testNow)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.Contains(t, strings.ToLower(v.Title), "rom")
	}
}
