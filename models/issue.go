package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Pothole     IssueCategory = "pothole"
	Streetlight IssueCategory = "streetlight"
	Garbage     IssueCategory = "garbage"
	Traffic     IssueCategory = "traffic"
	Other       IssueCategory = "other"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusNew        IssueStatus = "new"
	StatusAssigned   IssueStatus = "assigned"
	StatusInProgress IssueStatus = "in-progress"
	StatusResolved   IssueStatus = "resolved"
)

// IssuePriority enum
type IssuePriority string

const (
	PriorityHigh   IssuePriority = "high"
	PriorityMedium IssuePriority = "medium"
	PriorityLow    IssuePriority = "low"
)

// MediaKind distinguishes image and video evidence; blob storage is
// partitioned into a bucket per kind.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
)

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    IssueCategory      `bson:"category" json:"category"`
	Priority    IssuePriority      `bson:"priority" json:"priority"`
	Status      IssueStatus        `bson:"status" json:"status"`
	Latitude    float64            `bson:"latitude" json:"latitude"`
	Longitude   float64            `bson:"longitude" json:"longitude"`
	Address     *string            `bson:"address,omitempty" json:"address,omitempty"`
	MediaURL    string             `bson:"mediaUrl" json:"mediaUrl"`
	MediaKind   MediaKind          `bson:"mediaKind" json:"mediaKind"`
	ReportedBy  string             `bson:"reportedBy" json:"reportedBy"`
	AssignedTo  *string            `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Department  string             `bson:"department" json:"department"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c IssueCategory) bool {
	switch c {
	case Pothole, Streetlight, Garbage, Traffic, Other:
		return true
	}
	return false
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s IssueStatus) bool {
	switch s {
	case StatusNew, StatusAssigned, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// DepartmentFor maps a category to the municipal department responsible
// for it. The department is derived once at creation time and the stored
// value is never recomputed afterwards.
func DepartmentFor(c IssueCategory) string {
	switch c {
	case Pothole:
		return "Public Works"
	case Streetlight:
		return "Electrical"
	case Garbage:
		return "Sanitation"
	case Traffic:
		return "Traffic Management"
	default:
		return "General Services"
	}
}

// TitleFor derives the record title from its category.
func TitleFor(c IssueCategory) string {
	name := string(c)
	if name == "" {
		return "Issue Report"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Issue Report"
}
