package mirror

import "civicai-be/models"

// Statistics summarize the whole issue set. They are always computed from
// the full mirror, never from a filtered view: the dashboard's counters
// describe the city, not the operator's current filter.
type Statistics struct {
	Total       int                          `json:"total"`
	PerStatus   map[models.IssueStatus]int   `json:"perStatus"`
	PerPriority map[models.IssuePriority]int `json:"perPriority"`
}

// ComputeStatistics counts issues per status and per priority. Every
// defined status and priority appears in the maps, zero-valued when absent,
// so the per-status counts always sum to Total.
func ComputeStatistics(issues []models.Issue) Statistics {
	stats := Statistics{
		Total: len(issues),
		PerStatus: map[models.IssueStatus]int{
			models.StatusNew:        0,
			models.StatusAssigned:   0,
			models.StatusInProgress: 0,
			models.StatusResolved:   0,
		},
		PerPriority: map[models.IssuePriority]int{
			models.PriorityHigh:   0,
			models.PriorityMedium: 0,
			models.PriorityLow:    0,
		},
	}

	for _, issue := range issues {
		stats.PerStatus[issue.Status]++
		stats.PerPriority[issue.Priority]++
	}

	return stats
}
