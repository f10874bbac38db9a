package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/media"
	"io.winapps.travelgallery/internal/metrics"
	createmodels "io.winapps.travelgallery/internal/models/create_entry"
	"io.winapps.travelgallery/internal/notify"
)

// CreateEntry handles submission of the new entry form
func (h *GalleryHandler) CreateEntry(c *gin.Context) {
	var req createmodels.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location and description are required"})
		return
	}
	if strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location and description are required"})
		return
	}

	handle := media.HandleFromRef(strings.TrimSpace(req.MediaRef))
	mediaURL := ""
	if handle != "" {
		mediaURL = media.URL(handle)
	}

	entry, err := h.factory.Build(gallery.NewEntryInput{
		MediaRef:    mediaURL,
		Location:    req.Location,
		Description: req.Description,
		RawTags:     req.Tags,
	})
	if errors.Is(err, gallery.ErrMissingMedia) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select an image or video"})
		return
	}
	if err != nil {
		h.logError(c, err, "failed to build entry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	// The selected upload now belongs to the entry
	if err := h.media.Claim(handle); err != nil {
		switch {
		case errors.Is(err, media.ErrUnknownMedia):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Selected media was not found, please upload it again"})
			return
		case errors.Is(err, media.ErrMediaClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "Selected media already belongs to another entry"})
			return
		}
		h.logError(c, err, "failed to claim media", "media", handle)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	h.store.Create(entry)
	metrics.EntriesCreatedTotal.Inc()
	metrics.EntriesTotal.Set(float64(h.store.Len()))
	h.notifier.Notify(c.Request.Context(), notify.New(notify.EntryCreated, entry.ID, "Entry created successfully"))

	c.JSON(http.StatusCreated, createmodels.CreateEntryResponse{
		Entry:   entry,
		Message: "Entry created successfully",
	})
}
