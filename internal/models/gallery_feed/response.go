package models

import "io.winapps.travelgallery/internal/gallery"

type ListEntriesResponse struct {
	Entries []gallery.Entry `json:"entries"`
	Total   int             `json:"total"`
	Query   string          `json:"query,omitempty"`
}
