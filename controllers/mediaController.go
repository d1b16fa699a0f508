package controllers

import (
	"errors"
	"net/http"

	"civicai-be/blob"
	"civicai-be/upload"

	"github.com/gin-gonic/gin"
)

// MediaController streams stored evidence back out of the blob store.
type MediaController struct {
	blobs *blob.GridFSStore
}

// NewMediaController returns a controller over the blob store.
func NewMediaController(blobs *blob.GridFSStore) *MediaController {
	return &MediaController{blobs: blobs}
}

// ServeMedia streams one stored file by bucket and key
func (mc *MediaController) ServeMedia(c *gin.Context) {
	bucket := c.Param("bucket")
	key := c.Param("key")

	if bucket != upload.ImageBucket && bucket != upload.VideoBucket {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown media bucket"})
		return
	}

	reader, contentType, length, err := mc.blobs.Open(bucket, key)
	if err != nil {
		if errors.Is(err, blob.ErrBlobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read media"})
		}
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, length, contentType, reader, nil)
}
