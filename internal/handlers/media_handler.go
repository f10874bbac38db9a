package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.travelgallery/internal/media"
	"io.winapps.travelgallery/internal/metrics"
	uploadmodels "io.winapps.travelgallery/internal/models/upload_media"
)

// UploadMedia stores the media selected in the new entry form. The optional
// "replaces" form field names the previous selection, which is released.
func (h *GalleryHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("media")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Media file is required"})
		return
	}

	data, err := h.readUpload(fileHeader)
	if err != nil {
		h.logError(c, err, "failed to read uploaded media", "filename", fileHeader.Filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read media file"})
		return
	}

	replaced := media.HandleFromRef(c.PostForm("replaces"))

	var (
		handle   media.Handle
		released bool
	)
	if replaced != "" {
		handle, released, err = h.media.Replace(replaced, fileHeader.Filename, data)
	} else {
		handle, err = h.media.Put(fileHeader.Filename, data)
	}
	if err != nil {
		switch {
		case errors.Is(err, media.ErrMediaTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Media file is too large"})
		case errors.Is(err, media.ErrEmptyMedia), errors.Is(err, media.ErrUnsupportedMedia):
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Please select an image or video"})
		default:
			h.logError(c, err, "failed to store media", "filename", fileHeader.Filename)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store media"})
		}
		return
	}
	if released {
		metrics.MediaPendingReleasedTotal.Inc()
	}

	blob, _ := h.media.Get(handle)
	c.JSON(http.StatusCreated, uploadmodels.UploadMediaResponse{
		Handle:      string(handle),
		URL:         media.URL(handle),
		ContentType: blob.ContentType,
		Size:        len(blob.Data),
		Replaced:    string(replaced),
	})
}

// DiscardMedia releases a pending selection when the form is closed without submitting
func (h *GalleryHandler) DiscardMedia(c *gin.Context) {
	handle := media.Handle(c.Param("handle"))
	if !h.media.Discard(handle) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending media not found"})
		return
	}
	metrics.MediaPendingReleasedTotal.Inc()
	c.Status(http.StatusNoContent)
}

// ServeMedia writes an uploaded blob
func (h *GalleryHandler) ServeMedia(c *gin.Context) {
	blob, ok := h.media.Get(media.Handle(c.Param("handle")))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}
	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, blob.ContentType, blob.Data)
}

func (h *GalleryHandler) readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Read one byte past the limit so oversize uploads are still detected
	r := io.Reader(f)
	if h.maxMediaBytes > 0 {
		r = io.LimitReader(f, h.maxMediaBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}
