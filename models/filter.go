package models

// FilterAll is the sentinel meaning "do not filter on this field".
const FilterAll = "all"

// FilterState is the operator's view predicate. Each field is either
// FilterAll or one concrete value. It never mutates the issue set it is
// applied to.
type FilterState struct {
	Status   string `form:"status" json:"status"`
	Category string `form:"category" json:"category"`
	Priority string `form:"priority" json:"priority"`
}

// NewFilterState returns a filter that passes everything.
func NewFilterState() FilterState {
	return FilterState{Status: FilterAll, Category: FilterAll, Priority: FilterAll}
}

// normalized treats the empty string the same as FilterAll so that missing
// query params behave like an unset filter.
func normalized(v string) string {
	if v == "" {
		return FilterAll
	}
	return v
}

// Matches reports whether the issue passes every non-"all" predicate.
func (f FilterState) Matches(issue Issue) bool {
	if s := normalized(f.Status); s != FilterAll && s != string(issue.Status) {
		return false
	}
	if c := normalized(f.Category); c != FilterAll && c != string(issue.Category) {
		return false
	}
	if p := normalized(f.Priority); p != FilterAll && p != string(issue.Priority) {
		return false
	}
	return true
}
