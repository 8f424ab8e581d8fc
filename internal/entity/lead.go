package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Funnel stages. The graph is flat on purpose: any status can be set from
// any other, the funnel ordering only exists in the UI.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusClosed    = "closed"
)

var Statuses = []string{StatusNew, StatusContacted, StatusQualified, StatusClosed}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// NormalizeStatus maps anything outside the enum to "new". Consumers use
// this when grouping; the store itself never persists an unknown value.
func NormalizeStatus(s string) string {
	if ValidStatus(s) {
		return s
	}
	return StatusNew
}

type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Business  string    `json:"business,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"` // new, contacted, qualified, closed
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewLead(name, email, business, notes string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Business:  strings.TrimSpace(business),
		Notes:     strings.TrimSpace(notes),
		Status:    StatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if !ValidStatus(l.Status) {
		return errors.New("status outside the funnel enum")
	}
	return nil
}
