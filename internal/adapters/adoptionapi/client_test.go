package adoptionapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/adoptionapi"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/router"
	"pet-adoption/internal/workflow"
)

var (
	org      = workflow.Actor{ID: "org-1", Role: auth.RoleOrganization, Name: "Patinhas"}
	otherOrg = workflow.Actor{ID: "org-2", Role: auth.RoleOrganization}
	ana      = workflow.Actor{ID: "u-ana", Role: auth.RoleAdopter, Name: "Ana", Email: "ana@mail.test"}
	bruno    = workflow.Actor{ID: "u-bruno", Role: auth.RoleAdopter, Name: "Bruno", Email: "bruno@mail.test"}
)

func newClient(t *testing.T) *adoptionapi.Client {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: ts.URL, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return c
}

func TestClient_FullWorkflowAgainstAPI(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	pet, err := c.CreatePet(ctx, org, adoptionapi.CreatePetInput{
		Name:      "Thor",
		Species:   "Cachorro",
		AgeYears:  3,
		PhotoURLs: []string{"https://img.test/thor.jpg"},
	})
	require.NoError(t, err)
	require.Equal(t, "DISPONIVEL", pet.Status)

	reg := workflow.NewRegistrar(c)

	first, err := reg.Register(ctx, ana, pet.ID)
	require.NoError(t, err)
	require.False(t, first.AlreadyRegistered)
	require.Equal(t, workflow.StatusPending, first.Interest.Status)
	require.Equal(t, "Ana", first.Interest.AdopterName)
	require.Equal(t, "ana@mail.test", first.Interest.AdopterEmail)

	again, err := reg.Register(ctx, ana, pet.ID)
	require.NoError(t, err)
	require.True(t, again.AlreadyRegistered)
	require.Equal(t, first.Interest.ID, again.Interest.ID)

	_, err = reg.Register(ctx, bruno, pet.ID)
	require.NoError(t, err)

	// La organización abre la fila y aprueba a Ana.
	board := workflow.NewQueueBoard(c, org)
	defer board.Close()

	pets, err := board.LoadPets(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 1)

	view, err := board.Expand(ctx, pet.ID)
	require.NoError(t, err)
	snap := view.Snapshot()
	require.Len(t, snap.Items, 2)
	require.Equal(t, first.Interest.ID, snap.Items[0].ID)

	ev := workflow.NewEvaluator(c, workflow.AlwaysConfirm)
	approved, err := ev.Evaluate(ctx, org, view, first.Interest.ID, workflow.StatusApproved)
	require.NoError(t, err)
	require.Equal(t, workflow.StatusApproved, approved.Status)
	require.Len(t, view.Snapshot().Items, 1)

	// Evaluar de nuevo => 409 del servidor, la vista no cambia.
	_, err = ev.Evaluate(ctx, org, view, first.Interest.ID, workflow.StatusRejected)
	require.ErrorIs(t, err, workflow.ErrConflict)

	require.NoError(t, board.Refresh(ctx, pet.ID))
	require.Len(t, view.Snapshot().Items, 1)
	require.False(t, view.Snapshot().Stale)

	// Ana ve su interés con el animal completo.
	items, err := workflow.NewMyInterests(c, 2).Load(ctx, ana)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.True(t, items[0].Enriched)
	require.Equal(t, "Thor", items[0].Pet.Name)
	require.Equal(t, "https://img.test/thor.jpg", items[0].Image())
	require.Equal(t, workflow.StatusApproved, items[0].Interest.Status)
}

func TestClient_MapsErrorResponses(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	pet, err := c.CreatePet(ctx, org, adoptionapi.CreatePetInput{Name: "Mia", Species: "Gato", AgeYears: 1})
	require.NoError(t, err)

	_, err = c.ListInterests(ctx, otherOrg, pet.ID)
	require.ErrorIs(t, err, workflow.ErrForbidden)
	var re *workflow.RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, http.StatusForbidden, re.Status)

	_, err = c.ListInterests(ctx, ana, pet.ID)
	require.ErrorIs(t, err, workflow.ErrForbidden)

	_, err = c.RegisterInterest(ctx, workflow.Actor{}, pet.ID)
	require.ErrorIs(t, err, workflow.ErrUnauthorized)

	_, err = c.RegisterInterest(ctx, ana, "does-not-exist")
	require.ErrorIs(t, err, workflow.ErrNotFound)

	_, err = c.SetPetStatus(ctx, org, pet.ID, "ADOTADO")
	require.NoError(t, err)

	_, err = c.RegisterInterest(ctx, ana, pet.ID)
	require.ErrorIs(t, err, workflow.ErrConflict)
	require.ErrorAs(t, err, &re)
	require.Equal(t, "PET_UNAVAILABLE", re.Code)
	require.False(t, workflow.IsDuplicate(err))
}

func TestClient_DuplicateCarriesExistingInterest(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	pet, err := c.CreatePet(ctx, org, adoptionapi.CreatePetInput{Name: "Rex", Species: "Cachorro", AgeYears: 5})
	require.NoError(t, err)

	created, err := c.RegisterInterest(ctx, bruno, pet.ID)
	require.NoError(t, err)

	_, err = c.RegisterInterest(ctx, bruno, pet.ID)
	require.True(t, workflow.IsDuplicate(err))

	var re *workflow.RemoteError
	require.ErrorAs(t, err, &re)
	require.Equal(t, "ALREADY_IN_QUEUE", re.Code)
	require.Contains(t, re.Message, "já está na fila")
	require.NotNil(t, re.Interest)
	require.Equal(t, created.ID, re.Interest.ID)
}

func TestClient_TransportFailureIsUnavailable(t *testing.T) {
	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.ListMyInterests(context.Background(), ana)
	require.ErrorIs(t, err, workflow.ErrUnavailable)
}

func TestClient_ServerFailureIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title":"Internal Server Error","status":500}`))
	}))
	defer ts.Close()

	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.RegisterInterest(context.Background(), ana, "pet-1")
	require.ErrorIs(t, err, workflow.ErrUnavailable)
	require.NotErrorIs(t, err, workflow.ErrNotFound)
}

func TestClient_SendsBearerWhenTokenPresent(t *testing.T) {
	var gotAuth, gotDebug string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotDebug = r.Header.Get("X-Debug-User-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	withToken := ana
	withToken.Token = "tok-123"
	items, err := c.ListMyInterests(context.Background(), withToken)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Empty(t, gotDebug)
}

func TestClient_NormalizesPortugueseStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"interesseId":"i-1","animalId":"pet-1","status":"APROVADO","animal":{"id":"pet-1","nome":"Thor"}},
			{"interesseId":"i-2","animalId":"pet-2","status":"REJEITADO","animal":{"id":"pet-2","nome":"Mia"}}
		]`))
	}))
	defer ts.Close()

	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	items, err := c.ListMyInterests(context.Background(), ana)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, workflow.StatusApproved, items[0].Interest.Status)
	require.Equal(t, workflow.StatusRejected, items[1].Interest.Status)
	require.Equal(t, "Thor", items[0].Pet.Name)
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := adoptionapi.New(adoptionapi.Config{})
	require.Error(t, err)
}
