package workflow

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadedView(t *testing.T, store *fakeStore, items ...string) *QueueView {
	t.Helper()
	store.listFn = func(context.Context, string) ([]Interest, error) { return queueOf(items...), nil }
	v := NewQueueView(store, org, "pet-1")
	require.NoError(t, v.Load(context.Background()))
	return v
}

func TestEvaluator_NotConfirmedSendsNothing(t *testing.T) {
	store := newFakeStore()
	v := loadedView(t, store, "a", "b")

	var prompt string
	deny := ConfirmFunc(func(_ context.Context, p string) (bool, error) {
		prompt = p
		return false, nil
	})

	_, err := NewEvaluator(store, deny).Evaluate(context.Background(), org, v, "a", StatusApproved)
	require.ErrorIs(t, err, ErrNotConfirmed)
	require.Zero(t, store.Calls("evaluate"))
	require.Contains(t, prompt, "approve")
	require.Contains(t, prompt, "adopter a")
	require.Len(t, v.Snapshot().Items, 2)
}

func TestEvaluator_SuccessRemovesOnlyThatInterest(t *testing.T) {
	store := newFakeStore()
	v := loadedView(t, store, "a", "b", "c")
	store.evaluateFn = func(id string, d Status) (Interest, error) {
		return Interest{ID: id, Status: d}, nil
	}

	got, err := NewEvaluator(store, AlwaysConfirm).Evaluate(context.Background(), org, v, "b", StatusApproved)
	require.NoError(t, err)
	require.Equal(t, StatusApproved, got.Status)

	snap := v.Snapshot()
	require.Equal(t, []string{"a", "c"}, ids(snap.Items))
	require.True(t, snap.Stale)
}

func TestEvaluator_ErrorLeavesViewUntouched(t *testing.T) {
	store := newFakeStore()
	v := loadedView(t, store, "a", "b")
	before := v.Snapshot()

	for _, remote := range []error{
		&RemoteError{Kind: ErrConflict, Status: http.StatusConflict, Code: "INTEREST_NOT_PENDING", Message: "interest is not pending"},
		&RemoteError{Kind: ErrForbidden, Status: http.StatusForbidden},
		errors.Join(ErrUnavailable, errors.New("timeout")),
	} {
		store.evaluateFn = func(string, Status) (Interest, error) { return Interest{}, remote }

		_, err := NewEvaluator(store, AlwaysConfirm).Evaluate(context.Background(), org, v, "a", StatusRejected)
		require.Equal(t, remote, err)
		require.Equal(t, before, v.Snapshot())
	}
}

func TestEvaluator_Validation(t *testing.T) {
	store := newFakeStore()
	e := NewEvaluator(store, AlwaysConfirm)

	_, err := e.Evaluate(context.Background(), org, nil, "a", StatusPending)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.Evaluate(context.Background(), org, nil, "", StatusApproved)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEvaluator(store, nil).Evaluate(context.Background(), org, nil, "a", StatusApproved)
	require.ErrorIs(t, err, ErrNotConfirmed)

	require.Zero(t, store.Calls("evaluate"))
}

func TestEvaluator_WorksWithoutView(t *testing.T) {
	store := newFakeStore()
	store.evaluateFn = func(id string, d Status) (Interest, error) { return Interest{ID: id, Status: d}, nil }

	got, err := NewEvaluator(store, AlwaysConfirm).Evaluate(context.Background(), org, nil, "x", StatusRejected)
	require.NoError(t, err)
	require.Equal(t, StatusRejected, got.Status)
}
