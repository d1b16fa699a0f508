package mirror

import "civicai-be/models"

// ApplyFilter returns the issues passing every non-"all" predicate of the
// filter. Pure and order-preserving; the input slice is never mutated. With
// all predicates set to "all" the result equals the input in order.
func ApplyFilter(issues []models.Issue, filter models.FilterState) []models.Issue {
	filtered := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if filter.Matches(issue) {
			filtered = append(filtered, issue)
		}
	}
	return filtered
}
