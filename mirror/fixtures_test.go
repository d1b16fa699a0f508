package mirror

import (
	"time"

	"civicai-be/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

// sampleIssues returns a small realistic issue set, newest created first.
func sampleIssues() []models.Issue {
	base := time.Date(2024, 1, 12, 16, 10, 0, 0, time.UTC)

	return []models.Issue{
		{
			ID:          primitive.NewObjectID(),
			Title:       "Pothole Issue Report",
			Description: "Deep pothole causing vehicle damage near City Mall",
			Category:    models.Pothole,
			Priority:    models.PriorityHigh,
			Status:      models.StatusNew,
			Latitude:    19.0760,
			Longitude:   72.8777,
			Address:     strPtr("Main Street, Mumbai"),
			MediaURL:    "https://cdn.example/issue-images/pothole.jpg",
			MediaKind:   models.KindImage,
			ReportedBy:  "citizen_123",
			Department:  "Public Works",
			CreatedAt:   base.Add(72 * time.Hour),
			UpdatedAt:   base.Add(72 * time.Hour),
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "Streetlight Issue Report",
			Description: "Streetlight not working near bus stop, safety concern",
			Category:    models.Streetlight,
			Priority:    models.PriorityMedium,
			Status:      models.StatusAssigned,
			Latitude:    19.0820,
			Longitude:   72.8850,
			Address:     strPtr("Oak Avenue, Mumbai"),
			MediaURL:    "https://cdn.example/issue-images/streetlight.jpg",
			MediaKind:   models.KindImage,
			ReportedBy:  "citizen_456",
			AssignedTo:  strPtr("worker_789"),
			Department:  "Electrical",
			CreatedAt:   base.Add(48 * time.Hour),
			UpdatedAt:   base.Add(60 * time.Hour),
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "Garbage Issue Report",
			Description: "Public dustbin overflowing, attracting stray animals",
			Category:    models.Garbage,
			Priority:    models.PriorityLow,
			Status:      models.StatusInProgress,
			Latitude:    19.0900,
			Longitude:   72.8700,
			Address:     strPtr("Central Park, Mumbai"),
			MediaURL:    "https://cdn.example/issue-images/garbage.jpg",
			MediaKind:   models.KindImage,
			ReportedBy:  "citizen_789",
			AssignedTo:  strPtr("worker_456"),
			Department:  "Sanitation",
			CreatedAt:   base.Add(24 * time.Hour),
			UpdatedAt:   base.Add(70 * time.Hour),
		},
		{
			ID:          primitive.NewObjectID(),
			Title:       "Traffic Issue Report",
			Description: "Traffic light stuck on red, causing traffic jam",
			Category:    models.Traffic,
			Priority:    models.PriorityHigh,
			Status:      models.StatusResolved,
			Latitude:    19.0600,
			Longitude:   72.8900,
			Address:     strPtr("Junction Road, Mumbai"),
			MediaURL:    "https://cdn.example/issue-videos/traffic.webm",
			MediaKind:   models.KindVideo,
			ReportedBy:  "citizen_321",
			AssignedTo:  strPtr("worker_123"),
			Department:  "Traffic Management",
			CreatedAt:   base,
			UpdatedAt:   base.Add(46 * time.Hour),
		},
	}
}
