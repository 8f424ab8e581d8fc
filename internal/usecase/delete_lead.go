package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/mcalvora/leadflow/internal/entity"
)

type DeleteLeadUseCase struct {
	Leads    LeadRepositoryInterface
	Activity ActivityRepositoryInterface
}

func NewDeleteLeadUseCase(
	leads LeadRepositoryInterface,
	activity ActivityRepositoryInterface,
) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{
		Leads:    leads,
		Activity: activity,
	}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, id string) error {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if err := uc.Leads.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to delete lead: " + err.Error(),
		}
	}

	event := entity.NewActivityEvent(entity.ActivityLeadDeleted, "Lead deleted: "+lead.Name, map[string]string{
		"lead_id": lead.ID,
		"email":   lead.Email,
	})
	if err := uc.Activity.Append(ctx, event); err != nil {
		log.Printf("⚠️ CRITICAL: lead %s deleted but activity append failed: %v", lead.ID, err)
	}

	return nil
}
