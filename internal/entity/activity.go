package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity event types. Append-only: events are never edited or removed,
// creation order is the only ordering guarantee.
const (
	ActivityLeadCreated       = "lead_created"
	ActivityLeadStatusUpdated = "lead_status_updated"
	ActivityLeadConverted     = "lead_converted"
	ActivityLeadDeleted       = "lead_deleted"
)

type ActivityEvent struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewActivityEvent(eventType, title string, meta map[string]string) *ActivityEvent {
	return &ActivityEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Title:     title,
		Meta:      meta,
		CreatedAt: time.Now(),
	}
}
