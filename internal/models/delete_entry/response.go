package models

type DeleteEntryResponse struct {
	ID        string `json:"id"`
	IsDeleted bool   `json:"isDeleted"`
	Message   string `json:"message"`
}
