package models

type CreateEntryRequest struct {
	MediaRef    string `json:"mediaRef"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
	Tags        string `json:"tags"` // comma separated, e.g. "nature, hiking, sunset"
}
