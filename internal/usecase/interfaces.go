package usecase

import (
	"context"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]entity.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type ClientRepositoryInterface interface {
	Create(ctx context.Context, client *entity.Client) error
	List(ctx context.Context) ([]entity.Client, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type ActivityRepositoryInterface interface {
	Append(ctx context.Context, event *entity.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]entity.ActivityEvent, error)
}

type QueueProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
