package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDepartmentFor(t *testing.T) {
	cases := []struct {
		category   IssueCategory
		department string
	}{
		{Pothole, "Public Works"},
		{Streetlight, "Electrical"},
		{Garbage, "Sanitation"},
		{Traffic, "Traffic Management"},
		{Other, "General Services"},
		{IssueCategory("graffiti"), "General Services"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.department, DepartmentFor(tc.category), "category %q", tc.category)
	}
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "Pothole Issue Report", TitleFor(Pothole))
	assert.Equal(t, "Streetlight Issue Report", TitleFor(Streetlight))
	assert.Equal(t, "Issue Report", TitleFor(""))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(Pothole))
	assert.True(t, ValidCategory(Other))
	assert.False(t, ValidCategory("sidewalk"))
	assert.False(t, ValidCategory(""))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusNew))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
