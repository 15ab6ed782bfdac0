package workflow

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMyInterests_EnrichesConcurrentlyAndDegrades(t *testing.T) {
	store := newFakeStore()
	store.mineFn = func() ([]AdopterInterest, error) {
		return []AdopterInterest{
			{Interest: Interest{ID: "i-1", Status: StatusPending}, Pet: PetRef{ID: "pet-1", Name: "Thor"}},
			{Interest: Interest{ID: "i-2", Status: StatusApproved}, Pet: PetRef{ID: "pet-broken", Name: "Mia"}},
			{Interest: Interest{ID: "i-3", Status: StatusRejected}, Pet: PetRef{ID: "pet-3", Name: "Rex"}},
		}, nil
	}

	var inFlight, maxInFlight int32
	store.petFn = func(petID string) (Pet, error) {
		n := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			cur := atomic.LoadInt32(&maxInFlight)
			if n <= cur || atomic.CompareAndSwapInt32(&maxInFlight, cur, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		if petID == "pet-broken" {
			return Pet{}, errors.New("boom")
		}
		return Pet{ID: petID, Name: "full " + petID, PhotoURLs: []string{"https://img/" + petID}}, nil
	}

	items, err := NewMyInterests(store, 2).Load(context.Background(), adopter)
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, []string{"i-1", "i-2", "i-3"}, []string{items[0].Interest.ID, items[1].Interest.ID, items[2].Interest.ID})

	require.True(t, items[0].Enriched)
	require.Equal(t, "https://img/pet-1", items[0].Image())

	require.False(t, items[1].Enriched)
	require.Equal(t, "Mia", items[1].Pet.Name)
	require.Equal(t, DefaultPetImage, items[1].Image())
	require.Equal(t, "accepted, expect contact", items[1].Label())

	require.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
}

func TestMyInterests_ListingFailureIsError(t *testing.T) {
	store := newFakeStore()
	store.mineFn = func() ([]AdopterInterest, error) { return nil, ErrUnavailable }

	items, err := NewMyInterests(store, 0).Load(context.Background(), adopter)
	require.ErrorIs(t, err, ErrUnavailable)
	require.Nil(t, items)
}

func TestMyInterests_EmptyListing(t *testing.T) {
	store := newFakeStore()
	store.mineFn = func() ([]AdopterInterest, error) { return nil, nil }

	items, err := NewMyInterests(store, 0).Load(context.Background(), adopter)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
	require.Zero(t, store.Calls("pet"))
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "awaiting review", StatusLabel(StatusPending))
	require.Equal(t, "accepted, expect contact", StatusLabel(StatusApproved))
	require.Equal(t, "closed, not accepted", StatusLabel(StatusRejected))
	require.Equal(t, "awaiting review", StatusLabel("WAT"))
	require.Equal(t, "awaiting review", StatusLabel(""))
	require.Equal(t, "accepted, expect contact", StatusLabel("APROVADO"))
}

func TestParseStatus_PortugueseValues(t *testing.T) {
	require.Equal(t, StatusApproved, ParseStatus("aprovado"))
	require.Equal(t, StatusRejected, ParseStatus(" REJEITADO "))
	require.Equal(t, StatusPending, ParseStatus("pendente"))
	require.Equal(t, StatusApproved, ParseStatus("APPROVED"))
	require.Equal(t, Status("OTHER"), ParseStatus("other"))
}

func TestResolveImage(t *testing.T) {
	require.Equal(t, "https://a", ResolveImage(Pet{PhotoURLs: []string{" ", "https://a"}, ImageURL: "https://b"}))
	require.Equal(t, "https://b", ResolveImage(Pet{ImageURL: "https://b"}))
	require.Equal(t, DefaultPetImage, ResolveImage(Pet{}))
}
