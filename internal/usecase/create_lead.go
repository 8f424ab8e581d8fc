package usecase

import (
	"context"
	"log"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/infra/queue"
)

type CreateLeadInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Business string `json:"business"`
	Notes    string `json:"notes"`
}

type CreateLeadUseCase struct {
	Leads    LeadRepositoryInterface
	Activity ActivityRepositoryInterface
	Queue    QueueProducerInterface
}

func NewCreateLeadUseCase(
	leads LeadRepositoryInterface,
	activity ActivityRepositoryInterface,
	producer QueueProducerInterface,
) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads:    leads,
		Activity: activity,
		Queue:    producer,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: validationMessage(validationErrors),
		}
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Business, input.Notes)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	event := entity.NewActivityEvent(entity.ActivityLeadCreated, "New lead: "+lead.Name, map[string]string{
		"lead_id": lead.ID,
		"email":   lead.Email,
	})
	if err := uc.Activity.Append(ctx, event); err != nil {
		// The lead is in. An audit gap beats failing the intake.
		log.Printf("⚠️ CRITICAL: lead %s created but activity append failed: %v", lead.ID, err)
	}

	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Event:    queue.EventLeadCreated,
			LeadID:   lead.ID,
			Name:     lead.Name,
			Email:    lead.Email,
			Business: lead.Business,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ lead %s created but intake notification failed: %v", lead.ID, err)
		}
	}

	return lead, nil
}
