package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mcalvora/leadflow/internal/entity"
)

// StatusUpdater pushes a status change to the server of record.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// NoticeFunc surfaces a user-visible failure notice. It is called off the
// board's lock; calling back into the board from it is safe.
type NoticeFunc func(leadID, message string)

var ErrUnknownLead = errors.New("unknown lead")

const defaultRequestTimeout = 10 * time.Second

// Board owns the client-side view of the funnel. Every card is either
// settled on a confirmed status or pending on exactly one in-flight status
// request; a second drag while pending is queued and supersedes any earlier
// queued target. Each request carries an epoch so a stale response (one that
// resolves after a rollback or a reload) can never resurrect old state.
type Board struct {
	updater StatusUpdater
	notify  NoticeFunc

	// Per-request deadline. Guarantees a card never stays visibly pending
	// forever: the request resolves or times out into a rollback.
	RequestTimeout time.Duration

	mu    sync.Mutex
	cards map[string]*card
	epoch uint64 // monotonic across the whole board, survives reloads
	wg    sync.WaitGroup
}

type card struct {
	lead    entity.Lead
	settled string      // last server-confirmed status
	pending *transition // nil when settled
	queued  string      // superseding target, "" if none
	epoch   uint64      // epoch of the in-flight request, 0 when settled
}

type transition struct {
	from string
	to   string
}

func NewBoard(updater StatusUpdater, notify NoticeFunc) *Board {
	return &Board{
		updater:        updater,
		notify:         notify,
		RequestTimeout: defaultRequestTimeout,
		cards:          make(map[string]*card),
	}
}

// Load replaces the board with a fresh server snapshot. Unknown statuses are
// normalized to "new". Any in-flight requests from before the load are
// orphaned: their epochs no longer match, so their responses are dropped.
func (b *Board) Load(leads []entity.Lead) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.cards = make(map[string]*card, len(leads))
	for _, lead := range leads {
		lead.Status = entity.NormalizeStatus(lead.Status)
		b.cards[lead.ID] = &card{
			lead:    lead,
			settled: lead.Status,
		}
	}
}

// Move is the drag-release entry point. The card re-renders under the target
// column immediately; the server round trip happens in the background.
// Dropping a settled card back onto its own column is a no-op. Dropping a
// pending card queues the new target behind the in-flight request,
// superseding any previously queued one (last writer wins, requests stay
// serialized per lead).
func (b *Board) Move(id, target string) error {
	if !entity.ValidStatus(target) {
		return fmt.Errorf("invalid status %q", target)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.cards[id]
	if !ok {
		return ErrUnknownLead
	}

	if c.pending != nil {
		c.queued = target
		return nil
	}

	if target == c.settled {
		return nil
	}

	b.begin(c, target)
	return nil
}

// begin starts the server request for a transition. Caller holds b.mu.
func (b *Board) begin(c *card, target string) {
	b.epoch++
	c.pending = &transition{from: c.settled, to: target}
	c.epoch = b.epoch

	b.wg.Add(1)
	go b.push(c.lead.ID, target, c.epoch)
}

// push runs the round trip and reconciles the card with the outcome.
func (b *Board) push(id, target string, epoch uint64) {
	defer b.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), b.RequestTimeout)
	err := b.updater.UpdateStatus(ctx, id, target)
	cancel()

	b.mu.Lock()

	c, ok := b.cards[id]
	if !ok || c.epoch != epoch || c.pending == nil {
		// Stale response: the board was reloaded or the card superseded.
		b.mu.Unlock()
		return
	}

	var notice string
	if err != nil {
		// Rollback: the card snaps back to the column it came from.
		c.pending = nil
		c.epoch = 0
		notice = fmt.Sprintf("Could not move %s to %q: %v", c.lead.Name, target, err)
	} else {
		c.settled = c.pending.to
		c.lead.Status = c.settled
		c.pending = nil
		c.epoch = 0
	}

	if q := c.queued; q != "" {
		c.queued = ""
		if q != c.settled {
			b.begin(c, q)
		}
	}

	b.mu.Unlock()

	if notice != "" && b.notify != nil {
		b.notify(id, notice)
	}
}

// Columns groups the cards the way the funnel renders them: pending cards
// show under their optimistic target, settled cards under their confirmed
// status. Newest first within a column.
func (b *Board) Columns() map[string][]entity.Lead {
	b.mu.Lock()
	defer b.mu.Unlock()

	cols := make(map[string][]entity.Lead, len(entity.Statuses))
	for _, s := range entity.Statuses {
		cols[s] = []entity.Lead{}
	}

	for _, c := range b.cards {
		status := c.settled
		if c.pending != nil {
			status = c.pending.to
		}
		lead := c.lead
		lead.Status = status
		cols[status] = append(cols[status], lead)
	}

	for _, leads := range cols {
		sort.Slice(leads, func(i, j int) bool {
			return leads[i].CreatedAt.After(leads[j].CreatedAt)
		})
	}

	return cols
}

// Status reports the card's rendered status (optimistic when pending).
func (b *Board) Status(id string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.cards[id]
	if !ok {
		return "", false
	}
	if c.pending != nil {
		return c.pending.to, true
	}
	return c.settled, true
}

// Pending reports whether the card has an unresolved server request.
func (b *Board) Pending(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.cards[id]
	return ok && c.pending != nil
}

// Wait blocks until every in-flight request (including queued follow-ups)
// has resolved. Mostly useful for shutdown and tests.
func (b *Board) Wait() {
	b.wg.Wait()
}
