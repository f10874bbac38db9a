package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/metrics"
	feedmodels "io.winapps.travelgallery/internal/models/gallery_feed"
)

// ListEntries returns the gallery feed, filtered by the optional "q" query parameter
func (h *GalleryHandler) ListEntries(c *gin.Context) {
	query := c.Query("q")
	if strings.TrimSpace(query) != "" {
		metrics.SearchesTotal.Inc()
	}

	entries := gallery.Filter(h.store.Entries(), query)

	c.JSON(http.StatusOK, feedmodels.ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
		Query:   query,
	})
}
