package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"pet-adoption/internal/adapters/adoptionapi"
	"pet-adoption/internal/ports/auth"
	"pet-adoption/internal/router"
	"pet-adoption/internal/workflow"
)

// run ejecuta el CLI con un perfil vacío y devuelve stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--profile", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func newAPI(t *testing.T) (string, string) {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	t.Cleanup(ts.Close)

	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: ts.URL})
	require.NoError(t, err)
	pet, err := c.CreatePet(context.Background(),
		workflow.Actor{ID: "org-1", Role: auth.RoleOrganization},
		adoptionapi.CreatePetInput{Name: "Thor", Species: "Cachorro", AgeYears: 3},
	)
	require.NoError(t, err)
	return ts.URL, pet.ID
}

func TestCLI_RegisterQueueApproveMine(t *testing.T) {
	api, petID := newAPI(t)
	asAna := []string{"--api", api, "--user", "u-ana", "--role", "ADOTANTE", "--name", "Ana", "--email", "ana@mail.test"}
	asOrg := []string{"--api", api, "--user", "org-1", "--role", "ONG"}

	out, err := run(t, "", append(asAna, "register", petID)...)
	require.NoError(t, err)
	require.Contains(t, out, "Interest sent")

	out, err = run(t, "", append(asAna, "register", petID)...)
	require.NoError(t, err)
	require.Contains(t, out, "already in the queue")

	out, err = run(t, "", append(asOrg, "queue")...)
	require.NoError(t, err)
	require.Contains(t, out, "Thor")

	out, err = run(t, "", append(asOrg, "queue", petID)...)
	require.NoError(t, err)
	require.Contains(t, out, "Ana")
	require.Contains(t, out, "ana@mail.test")

	items, err := mustClient(t, api).ListInterests(context.Background(), workflow.Actor{ID: "org-1", Role: auth.RoleOrganization}, petID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	interestID := items[0].ID

	// Respuesta "n": no se envía nada.
	out, err = run(t, "n\n", append(asOrg, "approve", interestID, "--animal", petID)...)
	require.NoError(t, err)
	require.Contains(t, out, "approve candidate Ana?")
	require.Contains(t, out, "Cancelled")

	out, err = run(t, "y\n", append(asOrg, "approve", interestID, "--animal", petID)...)
	require.NoError(t, err)
	require.Contains(t, out, "approved")
	require.Contains(t, out, "No pending candidates")

	_, err = run(t, "", append(asOrg, "reject", interestID, "--yes")...)
	require.ErrorIs(t, err, workflow.ErrConflict)

	out, err = run(t, "", append(asAna, "mine")...)
	require.NoError(t, err)
	require.Contains(t, out, "Thor")
	require.Contains(t, out, "accepted, expect contact")
	require.Contains(t, out, workflow.DefaultPetImage)
}

func TestCLI_QueueAllAndWatch(t *testing.T) {
	api, petID := newAPI(t)
	asOrg := []string{"--api", api, "--user", "org-1", "--role", "ORGANIZATION"}

	_, err := run(t, "", "--api", api, "--user", "u-ana", "--role", "ADOPTER", "--name", "Ana", "--email", "ana@mail.test", "register", petID)
	require.NoError(t, err)

	out, err := run(t, "", append(asOrg, "queue", "--all")...)
	require.NoError(t, err)
	require.Contains(t, out, "Thor ("+petID+")")
	require.Contains(t, out, "ana@mail.test")

	out, err = run(t, "", append(asOrg, "queue", petID, "--watch", "10ms", "--times", "2")...)
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "ana@mail.test"))
}

func TestCLI_WrongRoleShowsServerMessage(t *testing.T) {
	api, petID := newAPI(t)

	_, err := run(t, "", "--api", api, "--user", "u-ana", "--role", "ADOPTER", "queue", petID)
	require.ErrorIs(t, err, workflow.ErrForbidden)
	require.Contains(t, userMessage(err), "ORGANIZATION")
}

func TestCLI_RequiresIdentity(t *testing.T) {
	api, petID := newAPI(t)

	_, err := run(t, "", "--api", api, "register", petID)
	require.ErrorContains(t, err, "no identity")
}

func TestCLI_PetsCatalog(t *testing.T) {
	api, _ := newAPI(t)

	out, err := run(t, "", "--api", api, "pets", "--status", "DISPONIVEL", "--format", "markdown")
	require.NoError(t, err)
	require.Contains(t, out, "| Thor |")
}

func TestProfile_FileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adopt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://api.test\nuser_id: u-1\nrole: ADOPTER\ntimeout: 3s\n"), 0o600))

	p, err := loadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "http://api.test", p.apiURL())

	merged := p.merge(Profile{UserID: "u-2", Role: " "})
	require.Equal(t, "u-2", merged.UserID)
	require.Equal(t, "ADOPTER", merged.Role)

	d, err := merged.timeout()
	require.NoError(t, err)
	require.Equal(t, "3s", d.String())

	a, err := merged.actor()
	require.NoError(t, err)
	require.Equal(t, auth.RoleAdopter, a.Role)
}

func TestProfile_MissingFileIsEmpty(t *testing.T) {
	p, err := loadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, defaultAPIURL, p.apiURL())

	_, err = Profile{Timeout: "soon"}.timeout()
	require.Error(t, err)
}

func TestProfileSave_RoundTripsAndMasksToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adopt.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--profile", path, "--user", "u-9", "--token", "secret", "profile", "save"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	p, err := loadProfile(path)
	require.NoError(t, err)
	require.Equal(t, "u-9", p.UserID)
	require.Equal(t, "secret", p.Token)

	out.Reset()
	cmd = newRootCmd()
	cmd.SetArgs([]string{"--profile", path, "profile"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "user_id: u-9")
	require.NotContains(t, out.String(), "secret")
}

func mustClient(t *testing.T, api string) *adoptionapi.Client {
	t.Helper()
	c, err := adoptionapi.New(adoptionapi.Config{BaseURL: api})
	require.NoError(t, err)
	return c
}
