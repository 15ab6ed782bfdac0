package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-adoption/internal/domain/adoption"
)

func pending(id, adopterID, animalID string, at time.Time) adoption.Interest {
	return adoption.Interest{
		ID:        id,
		AnimalID:  animalID,
		AdopterID: adopterID,
		Status:    adoption.StatusPending,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestInterestRepo_ConcurrentCreateKeepsSinglePending(t *testing.T) {
	repo := NewInterestRepo()
	now := time.Now()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- repo.Create(context.Background(), pending(fmt.Sprintf("i-%d", n), "u-1", "pet-1", now))
		}(n)
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, adoption.ErrAlreadyInQueue)
	}
	require.Equal(t, 1, ok)

	items, err := repo.ListPendingByAnimal(context.Background(), "pet-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestInterestRepo_UpdatePendingIsGuarded(t *testing.T) {
	repo := NewInterestRepo()
	i := pending("i-1", "u-1", "pet-1", time.Now())
	require.NoError(t, repo.Create(context.Background(), i))

	i.Status = adoption.StatusApproved
	require.NoError(t, repo.UpdatePending(context.Background(), i))

	i.Status = adoption.StatusRejected
	require.ErrorIs(t, repo.UpdatePending(context.Background(), i), adoption.ErrBadState)

	got, err := repo.GetByID(context.Background(), "i-1")
	require.NoError(t, err)
	require.Equal(t, adoption.StatusApproved, got.Status)
}

func TestInterestRepo_ListPendingByAnimal_OrderTieBreaksByID(t *testing.T) {
	repo := NewInterestRepo()
	t0 := time.Date(2025, 10, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), pending("b", "u-2", "pet-1", t0)))
	require.NoError(t, repo.Create(context.Background(), pending("a", "u-1", "pet-1", t0)))
	require.NoError(t, repo.Create(context.Background(), pending("c", "u-3", "pet-1", t0.Add(-time.Minute))))

	items, err := repo.ListPendingByAnimal(context.Background(), "pet-1")
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	require.Equal(t, []string{"c", "a", "b"}, ids)
}
