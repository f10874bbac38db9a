package models

type UploadMediaResponse struct {
	Handle      string `json:"handle"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
	Replaced    string `json:"replaced,omitempty"`
}
