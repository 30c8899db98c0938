package model

import "time"

// Exchange is one completed audio round trip: upload in, synthesized reply out.
type Exchange struct {
	ID           int
	CreatedAt    time.Time
	UploadPath   string
	ResponsePath string
	Transcript   string
	ReplyText    string
	Provider     string
	LatencyMs    int64
	ErrorMessage string
}
