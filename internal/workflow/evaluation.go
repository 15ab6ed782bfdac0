package workflow

import (
	"context"
	"fmt"
	"strings"
)

// Confirmer bloquea hasta que el usuario responde sí/no.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm se usa con --yes.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return true, nil })

type Evaluator struct {
	store   Store
	confirm Confirmer
}

func NewEvaluator(store Store, confirm Confirmer) *Evaluator {
	return &Evaluator{store: store, confirm: confirm}
}

// Evaluate pide confirmación, envía la decisión y, si el servidor acepta,
// saca el interés de la vista (que queda Stale hasta el próximo Load).
// Ante cualquier error la vista no se toca. view puede ser nil.
func (e *Evaluator) Evaluate(ctx context.Context, actor Actor, view *QueueView, interestID string, decision Status) (Interest, error) {
	interestID = strings.TrimSpace(interestID)
	if interestID == "" || strings.TrimSpace(actor.ID) == "" {
		return Interest{}, ErrInvalidInput
	}
	if decision != StatusApproved && decision != StatusRejected {
		return Interest{}, ErrInvalidInput
	}
	if e.confirm == nil {
		return Interest{}, ErrNotConfirmed
	}

	ok, err := e.confirm.Confirm(ctx, confirmPrompt(view, interestID, decision))
	if err != nil {
		return Interest{}, err
	}
	if !ok {
		return Interest{}, ErrNotConfirmed
	}

	updated, err := e.store.EvaluateInterest(ctx, actor, interestID, decision)
	if err != nil {
		return Interest{}, err
	}

	if view != nil {
		view.Remove(interestID)
	}
	return updated, nil
}

func confirmPrompt(view *QueueView, interestID string, decision Status) string {
	verb := "approve"
	if decision == StatusRejected {
		verb = "reject"
	}
	who := interestID
	if view != nil {
		if i, ok := view.Find(interestID); ok && i.AdopterName != "" {
			who = i.AdopterName
		}
	}
	return fmt.Sprintf("Are you sure you want to %s candidate %s?", verb, who)
}
