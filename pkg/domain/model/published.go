package model

import "time"

// PublishedDocument is the rendered artifact served to readers
type PublishedDocument struct {
	RunID       string    // Empty when restored from storage
	GeneratedAt time.Time // Generation time of the digest, or storage modification time when restored
	Body        []byte    // Complete HTML page
}
