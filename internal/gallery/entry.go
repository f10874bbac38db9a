package gallery

// Entry is one travel-journal post in the gallery feed.
type Entry struct {
	ID           string   `json:"id"`
	Media        string   `json:"image"`
	Location     string   `json:"location"`
	CreatedAt    string   `json:"date"`
	Description  string   `json:"description"`
	LikeCount    int      `json:"likes"`
	CommentCount int      `json:"comments"`
	Tags         []string `json:"tags"`
	Liked        bool     `json:"isLiked"`
}

// Patch carries the fields an admin edit may change. Nil fields are left untouched.
type Patch struct {
	Location    *string
	Description *string
	Tags        []string
	// SetTags distinguishes "clear the tags" from "leave the tags alone".
	SetTags bool
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Location == nil && p.Description == nil && !p.SetTags
}

func (e Entry) clone() Entry {
	if e.Tags != nil {
		tags := make([]string, len(e.Tags))
		copy(tags, e.Tags)
		e.Tags = tags
	}
	return e
}
