package entity

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Business     string    `json:"business,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	SourceLeadID string    `json:"source_lead_id"` // weak ref, the lead is gone after conversion
	CreatedAt    time.Time `json:"created_at"`
}

// NewClientFromLead copies the lead's contact fields into a fresh client.
// Non-empty overrides win over the copied values. SourceLeadID is set here
// and never reassigned.
func NewClientFromLead(lead *Lead, overrides ClientOverrides) *Client {
	c := &Client{
		ID:           uuid.New().String(),
		Name:         lead.Name,
		Email:        lead.Email,
		Business:     lead.Business,
		Notes:        lead.Notes,
		SourceLeadID: lead.ID,
		CreatedAt:    time.Now(),
	}

	if overrides.Name != "" {
		c.Name = overrides.Name
	}
	if overrides.Email != "" {
		c.Email = overrides.Email
	}
	if overrides.Business != "" {
		c.Business = overrides.Business
	}
	if overrides.Notes != "" {
		c.Notes = overrides.Notes
	}

	return c
}

type ClientOverrides struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Business string `json:"business,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
