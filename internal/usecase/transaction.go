package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs steps in order and, when one fails, undoes the already
// executed steps in reverse. It is a compensating sequence, not a database
// transaction: a compensation that itself fails is logged loudly and left
// for manual cleanup.
type Transaction struct {
	steps []step
}

type step struct {
	Name string
	Run  func(context.Context) error
	Undo func(context.Context) error // nil when the step needs no compensation
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) Add(name string, run func(context.Context) error) {
	t.steps = append(t.steps, step{Name: name, Run: run})
}

func (t *Transaction) AddWithCompensation(name string, run, undo func(context.Context) error) {
	t.steps = append(t.steps, step{Name: name, Run: run, Undo: undo})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, s := range t.steps {
		if err := s.Run(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("step '%s' failed: %w (rolled back %d steps)", s.Name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	for i := failedAt - 1; i >= 0; i-- {
		s := t.steps[i]
		if s.Undo == nil {
			continue
		}
		if err := s.Undo(ctx); err != nil {
			log.Printf("⚠️ WARNING: compensation '%s' failed: %v (inconsistency risk!)", s.Name, err)
		}
	}
}
