package domain

// CopyRequest is the event text handed to a copy supplier or the local
// copy generator.
type CopyRequest struct {
	Theme     string
	DressCode string
	Note      string
}

// CopyResult holds generated flyer copy. Descriptions are each at most 11
// words, taglines at most 8 words, and Palette always holds exactly 3 hex
// colors when produced by the local generator.
type CopyResult struct {
	Description  string   `json:"description"`
	Descriptions []string `json:"descriptions"`
	Taglines     []string `json:"taglines"`
	Palette      []string `json:"palette"`
}

// ArtworkRequest carries the event fields used to prompt an external
// poster-image supplier.
type ArtworkRequest struct {
	Theme        string
	DateTimeText string
	Location     string
	DressCode    string
	Note         string
	Tagline      string
	Description  string
}
