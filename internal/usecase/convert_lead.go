package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/infra/queue"
)

type ConvertLeadUseCase struct {
	Leads    LeadRepositoryInterface
	Clients  ClientRepositoryInterface
	Activity ActivityRepositoryInterface
	Queue    QueueProducerInterface
}

func NewConvertLeadUseCase(
	leads LeadRepositoryInterface,
	clients ClientRepositoryInterface,
	activity ActivityRepositoryInterface,
	producer QueueProducerInterface,
) *ConvertLeadUseCase {
	return &ConvertLeadUseCase{
		Leads:    leads,
		Clients:  clients,
		Activity: activity,
		Queue:    producer,
	}
}

// Execute turns a lead into a client, one way. Both effects (client insert,
// lead removal) run inside a compensating transaction so a half-converted
// lead never double-counts in stats: if the lead removal fails, the freshly
// created client is deleted again. A unique constraint on source_lead_id
// backs the exactly-once guarantee if a retry races.
func (uc *ConvertLeadUseCase) Execute(ctx context.Context, id string, overrides entity.ClientOverrides) (*entity.Client, error) {
	lead, err := uc.Leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	client := entity.NewClientFromLead(lead, overrides)

	txn := NewTransaction()
	txn.AddWithCompensation("create_client",
		func(ctx context.Context) error { return uc.Clients.Create(ctx, client) },
		func(ctx context.Context) error { return uc.Clients.Delete(ctx, client.ID) },
	)
	txn.Add("delete_lead", func(ctx context.Context) error {
		return uc.Leads.Delete(ctx, lead.ID)
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrLeadAlreadyConverted) {
			return nil, &DomainError{Code: CodeAlreadyConverted, Message: "lead already converted"}
		}
		return nil, &TechnicalError{
			Code:    CodeDatabase,
			Message: "conversion failed: " + err.Error(),
		}
	}

	event := entity.NewActivityEvent(entity.ActivityLeadConverted, lead.Name+" converted to client", map[string]string{
		"lead_id":   lead.ID,
		"client_id": client.ID,
		"email":     client.Email,
	})
	if err := uc.Activity.Append(ctx, event); err != nil {
		log.Printf("⚠️ CRITICAL: lead %s converted but activity append failed: %v", lead.ID, err)
	}

	if uc.Queue != nil {
		payload := queue.NotificationPayload{
			Event:    queue.EventLeadConverted,
			LeadID:   lead.ID,
			ClientID: client.ID,
			Name:     client.Name,
			Email:    client.Email,
			Business: client.Business,
		}
		if err := uc.Queue.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ client %s created but welcome notification failed: %v", client.ID, err)
		}
	}

	return client, nil
}
