package board

import (
	"testing"
	"time"

	"github.com/rvaughn/taskdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_ByStatusMembership(t *testing.T) {
	scheme := CategoryScheme{
		{Name: "active", Statuses: []domain.ProjectStatus{domain.StatusAssigned, domain.StatusInProgress}},
		{Name: "review", Statuses: []domain.ProjectStatus{domain.StatusSubmittedForQC}},
	}
	items := []ProjectView{
		viewOf(makeProject("One", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("Two", domain.StatusSubmittedForQC, testNow.Add(24*time.Hour))),
		viewOf(makeProject("Three", domain.StatusCompleted, testNow.Add(24*time.Hour))),
	}

	out := Partition(items, scheme)

	require.Len(t, out["active"], 1)
	assert.Equal(t, "One", out["active"][0].Title)
	require.Len(t, out["review"], 1)
	assert.Equal(t, "Two", out["review"][0].Title)

	// The completed item is covered by no category and appears nowhere.
	total := 0
	for _, bucket := range out {
		total += len(bucket)
	}
	assert.Equal(t, 2, total)
}

func TestPartition_Idempotent(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("A", domain.StatusAssigned, testNow.Add(24*time.Hour))),
		viewOf(makeProject("B", domain.StatusInProgress, testNow.Add(48*time.Hour))),
		viewOf(makeProject("C", domain.StatusDelivered, testNow.Add(72*time.Hour))),
	}

	first := Partition(items, DoerScheme)
	second := Partition(items, DoerScheme)

	assert.Equal(t, first, second)
}

func TestPartition_EveryBucketPresentWhenEmpty(t *testing.T) {
	out := Partition(nil, DoerScheme)

	for _, name := range DoerScheme.Names() {
		bucket, ok := out[name]
		assert.True(t, ok, "bucket %s exists", name)
		assert.Empty(t, bucket)
	}
}

func TestPartition_ItemAppearsInAtMostOneBucket(t *testing.T) {
	items := []ProjectView{
		viewOf(makeProject("X", domain.StatusInProgress, testNow.Add(24*time.Hour))),
	}

	out := Partition(items, SupervisorScheme)

	seen := 0
	for _, bucket := range out {
		seen += len(bucket)
	}
	assert.Equal(t, 1, seen)
}

func TestSchemes_StatusSetsAreDisjoint(t *testing.T) {
	for _, scheme := range []CategoryScheme{DoerScheme, SupervisorScheme} {
		seen := map[domain.ProjectStatus]string{}
		for _, c := range scheme {
			for _, s := range c.Statuses {
				prev, dup := seen[s]
				assert.False(t, dup, "status %s in both %s and %s", s, prev, c.Name)
				seen[s] = c.Name
			}
		}
	}
}

func TestSchemeFor(t *testing.T) {
	assert.Equal(t, DoerScheme.Names(), SchemeFor(domain.RoleDoer).Names())
	assert.Equal(t, SupervisorScheme.Names(), SchemeFor(domain.RoleSupervisor).Names())
}
