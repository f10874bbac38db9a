package handlers

import (
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/gallery"
	"io.winapps.travelgallery/internal/media"
	"io.winapps.travelgallery/internal/notify"
)

// MediaStore is the media registry surface used by the HTTP handlers.
type MediaStore interface {
	Put(name string, data []byte) (media.Handle, error)
	Replace(old media.Handle, name string, data []byte) (media.Handle, bool, error)
	Claim(h media.Handle) error
	Discard(h media.Handle) bool
	Get(h media.Handle) (media.Blob, bool)
}

// GalleryHandler serves the public gallery: the feed, new entries, likes and media.
type GalleryHandler struct {
	store         *gallery.Store
	factory       *gallery.Factory
	media         MediaStore
	notifier      notify.Notifier
	logger        *zap.SugaredLogger
	maxMediaBytes int64
}

// NewGalleryHandler creates a new gallery handler
func NewGalleryHandler(store *gallery.Store, factory *gallery.Factory, mediaStore MediaStore, notifier notify.Notifier, logger *zap.SugaredLogger, maxMediaBytes int64) *GalleryHandler {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &GalleryHandler{
		store:         store,
		factory:       factory,
		media:         mediaStore,
		notifier:      notifier,
		logger:        logger,
		maxMediaBytes: maxMediaBytes,
	}
}
