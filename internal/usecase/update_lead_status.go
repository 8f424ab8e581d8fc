package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mcalvora/leadflow/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Leads    LeadRepositoryInterface
	Activity ActivityRepositoryInterface
}

func NewUpdateLeadStatusUseCase(
	leads LeadRepositoryInterface,
	activity ActivityRepositoryInterface,
) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{
		Leads:    leads,
		Activity: activity,
	}
}

// Execute moves a lead to any status in the enum. The transition graph is
// deliberately unrestricted; the only guards are the enum itself and the
// lead existing. A same-status update succeeds without touching the store
// and without appending a duplicate activity event.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, id, newStatus string) (*entity.Lead, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, &DomainError{
			Code:    CodeInvalidStatus,
			Message: fmt.Sprintf("invalid status %q", newStatus),
		}
	}

	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if lead.Status == newStatus {
		// Idempotent no-op.
		return lead, nil
	}

	oldStatus := lead.Status
	if err := uc.Leads.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to update status: " + err.Error(),
		}
	}
	lead.Status = newStatus

	title := fmt.Sprintf("%s moved %s → %s", lead.Name, oldStatus, newStatus)
	event := entity.NewActivityEvent(entity.ActivityLeadStatusUpdated, title, map[string]string{
		"lead_id": lead.ID,
		"email":   lead.Email,
		"from":    oldStatus,
		"to":      newStatus,
	})
	if err := uc.Activity.Append(ctx, event); err != nil {
		log.Printf("⚠️ CRITICAL: status of lead %s updated but activity append failed: %v", lead.ID, err)
	}

	return lead, nil
}
