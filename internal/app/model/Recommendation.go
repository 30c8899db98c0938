package model

// Recommendation is a single movie suggestion returned by the assistant
type Recommendation struct {
	Title   string  `json:"title"`
	Year    int     `json:"year,omitempty"`
	Reason  string  `json:"reason,omitempty"`
	Rating  float64 `json:"rating,omitempty"`
	Runtime string  `json:"runtime,omitempty"`
}

