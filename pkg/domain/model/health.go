package model

import "time"

// HealthStatus represents the health check status
type HealthStatus struct {
	Status        string     `json:"status"`
	Service       string     `json:"service"`
	Version       string     `json:"version"`
	LastPublished *time.Time `json:"last_published,omitempty"`
	LastRunID     string     `json:"last_run_id,omitempty"`
}
