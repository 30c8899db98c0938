package model

import "time"

// FileInfo describes a local audio file picked up by the batch command
type FileInfo struct {
	FullPath string
	Name     string
	ModTime  time.Time
}
