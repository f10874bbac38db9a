package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/metrics"
	loginmodels "io.winapps.travelgallery/internal/models/admin_login"
	deletemodels "io.winapps.travelgallery/internal/models/delete_entry"
	feedmodels "io.winapps.travelgallery/internal/models/gallery_feed"
	updatemodels "io.winapps.travelgallery/internal/models/update_entry"
	"io.winapps.travelgallery/internal/notify"
)

// AdminHandler serves the admin login and the admin panel's edit and delete operations.
type AdminHandler struct {
	store    *gallery.Store
	gate     *gallery.Gate
	notifier notify.Notifier
	logger   *zap.SugaredLogger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store *gallery.Store, gate *gallery.Gate, notifier notify.Notifier, logger *zap.SugaredLogger) *AdminHandler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &AdminHandler{
		store:    store,
		gate:     gate,
		notifier: notifier,
		logger:   logger,
	}
}

// Login checks the admin credentials and returns a grant for the admin routes
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginmodels.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	token, ok := h.gate.Login(req.Username, req.Password)
	if !ok {
		// Same answer for a wrong username and a wrong password
		metrics.AdminLoginsTotal.WithLabelValues("failure").Inc()
		h.logWarn(c, "admin login rejected")
		h.notifier.Notify(c.Request.Context(), notify.New(notify.AdminLoginFailed, "", "Invalid credentials"))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	metrics.AdminLoginsTotal.WithLabelValues("success").Inc()
	h.notifier.Notify(c.Request.Context(), notify.New(notify.AdminLogin, "", "Welcome back, Admin!"))

	c.JSON(http.StatusOK, loginmodels.LoginResponse{
		Token:   token,
		Message: "Welcome back, Admin!",
	})
}

// ListEntries returns the full, unfiltered collection for the admin panel
func (h *AdminHandler) ListEntries(c *gin.Context) {
	entries := h.store.Entries()
	c.JSON(http.StatusOK, feedmodels.ListEntriesResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

// UpdateEntry merges the provided fields into an entry
func (h *AdminHandler) UpdateEntry(c *gin.Context) {
	var req updatemodels.UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	patch := gallery.Patch{
		Location:    req.Location,
		Description: req.Description,
	}
	if req.Tags != nil {
		patch.Tags = strings.Split(*req.Tags, ",")
		patch.SetTags = true
	}

	// At least one field must be provided for update
	if patch.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least location, description or tags must be provided"})
		return
	}

	if patch.Location != nil && strings.TrimSpace(*patch.Location) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location cannot be empty"})
		return
	}

	entryID := c.Param("id")
	entry, ok := h.store.Edit(entryID, patch)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	h.notifier.Notify(c.Request.Context(), notify.New(notify.EntryUpdated, entry.ID, "Entry updated successfully"))

	c.JSON(http.StatusOK, updatemodels.UpdateEntryResponse{
		Entry:   entry,
		Message: "Entry updated successfully",
	})
}

// DeleteEntry removes an entry and releases its media
func (h *AdminHandler) DeleteEntry(c *gin.Context) {
	entryID := c.Param("id")

	if _, ok := h.store.Delete(entryID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	metrics.EntriesDeletedTotal.Inc()
	metrics.EntriesTotal.Set(float64(h.store.Len()))
	h.notifier.Notify(c.Request.Context(), notify.New(notify.EntryDeleted, entryID, "Entry deleted successfully"))

	c.JSON(http.StatusOK, deletemodels.DeleteEntryResponse{
		ID:        entryID,
		IsDeleted: true,
		Message:   "Entry deleted successfully",
	})
}
