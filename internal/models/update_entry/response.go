package models

import "io.winapps.travelgallery/internal/gallery"

type UpdateEntryResponse struct {
	Entry   gallery.Entry `json:"entry"`
	Message string        `json:"message"`
}
