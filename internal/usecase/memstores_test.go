package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/mcalvora/leadflow/internal/entity"
)

// In-memory stores for the scenario tests. They honor the same contracts as
// the Postgres repositories (sentinel errors, ordering, source_lead_id
// uniqueness) without a database.

type memLeadRepo struct {
	mu    sync.Mutex
	leads map[string]entity.Lead
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{leads: make(map[string]entity.Lead)}
}

func (r *memLeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leads[lead.ID] = *lead
	return nil
}

func (r *memLeadRepo) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	return &lead, nil
}

func (r *memLeadRepo) List(ctx context.Context) ([]entity.Lead, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		out = append(out, lead)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memLeadRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	lead, ok := r.leads[id]
	if !ok {
		return entity.ErrLeadNotFound
	}
	lead.Status = status
	r.leads[id] = lead
	return nil
}

func (r *memLeadRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[id]; !ok {
		return entity.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *memLeadRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[string]int)
	for _, lead := range r.leads {
		counts[lead.Status]++
	}
	return counts, nil
}

type memClientRepo struct {
	mu      sync.Mutex
	clients map[string]entity.Client
	sources map[string]bool
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{
		clients: make(map[string]entity.Client),
		sources: make(map[string]bool),
	}
}

func (r *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sources[c.SourceLeadID] {
		return entity.ErrLeadAlreadyConverted
	}
	r.clients[c.ID] = *c
	r.sources[c.SourceLeadID] = true
	return nil
}

func (r *memClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memClientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return entity.ErrClientNotFound
	}
	delete(r.clients, id)
	delete(r.sources, c.SourceLeadID)
	return nil
}

func (r *memClientRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients), nil
}

type memActivityRepo struct {
	mu     sync.Mutex
	events []entity.ActivityEvent
}

func newMemActivityRepo() *memActivityRepo {
	return &memActivityRepo{}
}

func (r *memActivityRepo) Append(ctx context.Context, event *entity.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *memActivityRepo) Recent(ctx context.Context, limit int) ([]entity.ActivityEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 {
		limit = 20
	}
	out := make([]entity.ActivityEvent, 0, limit)
	for i := len(r.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.events[i])
	}
	return out, nil
}
