package models

type ToggleLikeResponse struct {
	ID      string `json:"id"`
	Likes   int    `json:"likes"`
	IsLiked bool   `json:"isLiked"`
}
