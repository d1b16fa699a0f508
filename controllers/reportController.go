package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"civicai-be/capture"
	"civicai-be/models"
	"civicai-be/pipeline"
	"civicai-be/store"
	"civicai-be/upload"

	"github.com/gin-gonic/gin"
)

// ReportController accepts citizen reports over HTTP. Each request runs an
// independent submission pipeline instance, so the in-flight guard applies
// per draft, never across citizens.
type ReportController struct {
	uploader *upload.Orchestrator
	issues   store.IssueStore
	geocoder capture.Geocoder
}

// NewReportController wires the submission dependencies.
func NewReportController(uploader *upload.Orchestrator, issues store.IssueStore, geocoder capture.Geocoder) *ReportController {
	if geocoder == nil {
		geocoder = capture.PlaceholderGeocoder{}
	}
	return &ReportController{uploader: uploader, issues: issues, geocoder: geocoder}
}

// SubmitReport handles the creation of a new issue from a multipart report
func (rc *ReportController) SubmitReport(c *gin.Context) {
	var input struct {
		Description string   `form:"description" binding:"required,max=1000"`
		Category    string   `form:"category" binding:"required"`
		ReportedBy  string   `form:"reportedBy" binding:"required,max=100"`
		Latitude    *float64 `form:"latitude"`
		Longitude   *float64 `form:"longitude"`
		Address     *string  `form:"address"`
	}

	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(models.IssueCategory(input.Category)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media evidence is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read media file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read media file"})
		return
	}

	asset := models.MediaAsset{
		Data:     data,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Origin:   models.OriginFilePick,
	}

	// Coordinates win over free-text; free-text goes through the geocoding
	// collaborator, exactly one fix ends up on the record.
	var location capture.Coordinates
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		location = capture.Coordinates{Latitude: *input.Latitude, Longitude: *input.Longitude}
	case input.Address != nil && *input.Address != "":
		location, err = rc.geocoder.Resolve(c.Request.Context(), *input.Address)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not resolve the given address"})
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "A location fix or an address is required"})
		return
	}

	draft := pipeline.Draft{
		Media:       &asset,
		Location:    &location,
		Address:     input.Address,
		Category:    models.IssueCategory(input.Category),
		Description: input.Description,
		ReportedBy:  input.ReportedBy,
	}

	created, err := pipeline.New(rc.uploader, rc.issues).Submit(c.Request.Context(), draft)
	if err != nil {
		rc.renderSubmitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// renderSubmitError maps the submission error taxonomy to distinct,
// actionable messages. Never a blanket "something went wrong" for cases the
// system can tell apart.
func (rc *ReportController) renderSubmitError(c *gin.Context, err error) {
	var tooLarge *upload.MediaTooLargeError

	switch {
	case errors.As(err, &tooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": tooLarge.Error(),
			"limit": tooLarge.Limit,
		})
	case errors.Is(err, upload.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Only image and video evidence is accepted"})
	case errors.Is(err, pipeline.ErrIncompleteDraft):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pipeline.ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "This report is already being submitted"})
	case errors.Is(err, upload.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Uploading the media evidence failed, please try again"})
	case errors.Is(err, pipeline.ErrCreateFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Saving the report failed, please try again"})
	default:
		log.Printf("Unexpected submission error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
	}
}
