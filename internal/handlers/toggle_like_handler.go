package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.travelgallery/internal/metrics"
	likemodels "io.winapps.travelgallery/internal/models/toggle_like"
	"io.winapps.travelgallery/internal/notify"
)

// ToggleLike likes or unlikes an entry for the current viewer
func (h *GalleryHandler) ToggleLike(c *gin.Context) {
	entryID := c.Param("id")

	entry, ok := h.store.ToggleLike(entryID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	kind, state := notify.EntryUnliked, "unliked"
	if entry.Liked {
		kind, state = notify.EntryLiked, "liked"
	}
	metrics.LikeTogglesTotal.WithLabelValues(state).Inc()
	h.notifier.Notify(c.Request.Context(), notify.New(kind, entry.ID, "Entry "+state))

	c.JSON(http.StatusOK, likemodels.ToggleLikeResponse{
		ID:      entry.ID,
		Likes:   entry.LikeCount,
		IsLiked: entry.Liked,
	})
}
