package mirror

import (
	"testing"

	"civicai-be/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyFilterAllPassesEverythingInOrder(t *testing.T) {
	issues := sampleIssues()

	filtered := ApplyFilter(issues, models.NewFilterState())

	assert.Equal(t, issues, filtered)
}

func TestApplyFilterSinglePredicate(t *testing.T) {
	issues := sampleIssues()

	filtered := ApplyFilter(issues, models.FilterState{
		Status:   string(models.StatusNew),
		Category: models.FilterAll,
		Priority: models.FilterAll,
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, models.StatusNew, filtered[0].Status)
}

func TestApplyFilterIsConjunctive(t *testing.T) {
	issues := sampleIssues()

	// High priority alone matches two issues; adding the category predicate
	// must narrow the result to their intersection.
	high := ApplyFilter(issues, models.FilterState{
		Status:   models.FilterAll,
		Category: models.FilterAll,
		Priority: string(models.PriorityHigh),
	})
	assert.Len(t, high, 2)

	highTraffic := ApplyFilter(issues, models.FilterState{
		Status:   models.FilterAll,
		Category: string(models.Traffic),
		Priority: string(models.PriorityHigh),
	})
	assert.Len(t, highTraffic, 1)
	assert.Equal(t, models.Traffic, highTraffic[0].Category)
	assert.Equal(t, models.PriorityHigh, highTraffic[0].Priority)
}

func TestApplyFilterEqualsIntersectionOfPredicates(t *testing.T) {
	issues := sampleIssues()
	filter := models.FilterState{
		Status:   string(models.StatusResolved),
		Category: string(models.Traffic),
		Priority: string(models.PriorityHigh),
	}

	filtered := ApplyFilter(issues, filter)

	expected := []models.Issue{}
	for _, issue := range issues {
		if string(issue.Status) == filter.Status &&
			string(issue.Category) == filter.Category &&
			string(issue.Priority) == filter.Priority {
			expected = append(expected, issue)
		}
	}
	assert.Equal(t, expected, filtered)
}

func TestApplyFilterEmptyFieldsBehaveLikeAll(t *testing.T) {
	issues := sampleIssues()

	filtered := ApplyFilter(issues, models.FilterState{})

	assert.Equal(t, issues, filtered)
}

func TestApplyFilterDoesNotMutateInput(t *testing.T) {
	issues := sampleIssues()
	snapshot := make([]models.Issue, len(issues))
	copy(snapshot, issues)

	ApplyFilter(issues, models.FilterState{
		Status:   string(models.StatusAssigned),
		Category: models.FilterAll,
		Priority: models.FilterAll,
	})

	assert.Equal(t, snapshot, issues)
}

func TestApplyFilterNoMatches(t *testing.T) {
	filtered := ApplyFilter(sampleIssues(), models.FilterState{
		Status:   string(models.StatusResolved),
		Category: string(models.Pothole),
		Priority: models.FilterAll,
	})

	assert.Empty(t, filtered)
}
