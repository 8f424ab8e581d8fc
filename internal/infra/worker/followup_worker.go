package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mcalvora/leadflow/internal/entity"
	"github.com/mcalvora/leadflow/internal/infra/queue"
)

// StaleLeadFinder is the read-only slice of the lead store the worker needs.
type StaleLeadFinder interface {
	FindStale(ctx context.Context, status string, cutoff time.Time) ([]entity.Lead, error)
}

// FollowUpWorker periodically flags leads stuck in "new" and publishes a
// reminder notification for each. It never mutates a lead; nagging sales is
// the whole job.
type FollowUpWorker struct {
	leads    StaleLeadFinder
	producer queue.QueueProducerInterface

	window       time.Duration // how long a lead may sit in "new" untouched
	tickInterval time.Duration
	renotifyGap  time.Duration // don't nag about the same lead more often than this

	mu       sync.Mutex
	notified map[string]time.Time
}

func NewFollowUpWorker(leads StaleLeadFinder, producer queue.QueueProducerInterface) *FollowUpWorker {
	return &FollowUpWorker{
		leads:        leads,
		producer:     producer,
		window:       3 * 24 * time.Hour,
		tickInterval: time.Hour,
		renotifyGap:  24 * time.Hour,
		notified:     make(map[string]time.Time),
	}
}

func (w *FollowUpWorker) Start(ctx context.Context) {
	log.Printf("🕒 Follow-up worker started (window %s)", w.window)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.remindStale(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Follow-up worker stopped")
			return
		case <-ticker.C:
			w.remindStale(ctx)
		}
	}
}

func (w *FollowUpWorker) remindStale(ctx context.Context) {
	cutoff := time.Now().Add(-w.window)

	stale, err := w.leads.FindStale(ctx, entity.StatusNew, cutoff)
	if err != nil {
		log.Printf("❌ Follow-up scan failed: %v", err)
		return
	}

	reminded := 0
	for _, lead := range stale {
		if !w.shouldNotify(lead.ID) {
			continue
		}

		payload := queue.NotificationPayload{
			Event:        queue.EventFollowUpDue,
			LeadID:       lead.ID,
			Name:         lead.Name,
			Email:        lead.Email,
			Business:     lead.Business,
			WaitingSince: lead.CreatedAt.Format(time.RFC3339),
		}
		if err := w.producer.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ Follow-up reminder for lead %s failed: %v", lead.ID, err)
			continue
		}

		w.markNotified(lead.ID)
		reminded++
	}

	if reminded > 0 {
		log.Printf("✅ %d follow-up reminder(s) published", reminded)
	}
}

func (w *FollowUpWorker) shouldNotify(leadID string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	last, ok := w.notified[leadID]
	return !ok || time.Since(last) > w.renotifyGap
}

func (w *FollowUpWorker) markNotified(leadID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.notified[leadID] = time.Now()
}
