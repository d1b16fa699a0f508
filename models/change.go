package models

// ChangeKind enum
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent is the payload delivered on the issues change feed whenever
// any record in the collection is inserted, updated or deleted. Consumers
// do not diff-patch from it; it is a signal to reload.
type ChangeEvent struct {
	Kind    ChangeKind `json:"kind"`
	IssueID string     `json:"issueId"`
}
