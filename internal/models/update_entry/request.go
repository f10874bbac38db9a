package models

type UpdateEntryRequest struct {
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"` // comma separated, replaces all tags
}
