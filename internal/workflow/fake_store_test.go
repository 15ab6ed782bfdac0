package workflow

import (
	"context"
	"sync"
)

// fakeStore es un Store en memoria configurable por test.
type fakeStore struct {
	mu sync.Mutex

	registerFn func(animalID string) (Interest, error)
	listFn     func(ctx context.Context, animalID string) ([]Interest, error)
	evaluateFn func(interestID string, decision Status) (Interest, error)
	mineFn     func() ([]AdopterInterest, error)
	petFn      func(petID string) (Pet, error)
	myPetsFn   func() ([]Pet, error)

	calls map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{calls: map[string]int{}}
}

func (f *fakeStore) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeStore) Calls(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeStore) RegisterInterest(_ context.Context, _ Actor, animalID string) (Interest, error) {
	f.count("register")
	return f.registerFn(animalID)
}

func (f *fakeStore) ListInterests(ctx context.Context, _ Actor, animalID string) ([]Interest, error) {
	f.count("list")
	return f.listFn(ctx, animalID)
}

func (f *fakeStore) EvaluateInterest(_ context.Context, _ Actor, interestID string, decision Status) (Interest, error) {
	f.count("evaluate")
	return f.evaluateFn(interestID, decision)
}

func (f *fakeStore) ListMyInterests(context.Context, Actor) ([]AdopterInterest, error) {
	f.count("mine")
	return f.mineFn()
}

func (f *fakeStore) GetPet(_ context.Context, _ Actor, petID string) (Pet, error) {
	f.count("pet")
	return f.petFn(petID)
}

func (f *fakeStore) ListMyPets(context.Context, Actor) ([]Pet, error) {
	f.count("mypets")
	return f.myPetsFn()
}

var (
	adopter = Actor{ID: "u-1", Role: "ADOPTER", Name: "Ana"}
	org     = Actor{ID: "org-1", Role: "ORGANIZATION"}
)
