package entity

import "errors"

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrClientNotFound = errors.New("client not found")

	// Raised by the client store when a second conversion races the first
	// (unique constraint on source_lead_id).
	ErrLeadAlreadyConverted = errors.New("lead already converted")
)
