package model

import "time"

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypeIssues  WebhookEventType = "issues"
	EventTypePing    WebhookEventType = "ping"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., opened, labeled)
	Repository string           // Repository full name
	Sender     string           // Sender username
	Labels     []string         // Labels of the issue at delivery time
	ReceivedAt time.Time        // Time when the event was received
}

// IsSupportedEvent checks if the event may change the digest
func (e *WebhookEvent) IsSupportedEvent() bool {
	if e.Type != EventTypeIssues {
		return false
	}

	switch e.Action {
	case "opened", "reopened", "labeled":
		return true
	default:
		return false
	}
}

// HasLabel reports whether the issue carries label
func (e *WebhookEvent) HasLabel(label string) bool {
	for _, l := range e.Labels {
		if l == label {
			return true
		}
	}
	return false
}
