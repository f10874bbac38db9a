package gallery

// SampleEntries returns the entries a fresh gallery starts with.
func SampleEntries() []Entry {
	return []Entry{
		{
			ID:           "1",
			Media:        "https://images.unsplash.com/photo-1493246507139-91e8fad9978e?auto=format&fit=crop&w=800",
			Location:     "Yosemite National Park",
			CreatedAt:    "March 15, 2024",
			Description:  "Breathtaking views of Half Dome during sunset. The colors were absolutely magical!",
			LikeCount:    234,
			CommentCount: 42,
			Tags:         []string{"nature", "hiking", "sunset", "california"},
		},
		{
			ID:           "2",
			Media:        "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=800",
			Location:     "Paris, France",
			CreatedAt:    "March 12, 2024",
			Description:  "Morning coffee at a charming café near the Eiffel Tower. Paris never disappoints!",
			LikeCount:    156,
			CommentCount: 28,
			Tags:         []string{"paris", "travel", "coffee", "cityscape"},
		},
		{
			ID:           "3",
			Media:        "https://images.unsplash.com/photo-1518548419970-58e3b4079ab2?auto=format&fit=crop&w=800",
			Location:     "Santorini, Greece",
			CreatedAt:    "March 10, 2024",
			Description:  "White-washed buildings against the deep blue Aegean Sea. A perfect Mediterranean afternoon.",
			LikeCount:    312,
			CommentCount: 45,
			Tags:         []string{"greece", "island", "architecture", "sea"},
		},
	}
}
