// Package adoptionapi implementa workflow.Store contra la API HTTP de adopción.
package adoptionapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/workflow"
)

// Config del cliente. BaseURL es obligatoria.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// Opcional: p.ej. otelhttp.NewTransport(...)
	Transport http.RoundTripper
}

type Client struct {
	http *httpclient.Client
}

var _ workflow.Store = (*Client)(nil)

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("adoptionapi: base url is required")
	}
	hc, err := httpclient.NewWithTransport(strings.TrimSpace(cfg.BaseURL), cfg.Timeout, cfg.Transport)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type interestDTO struct {
	ID           string    `json:"interesseId"`
	AnimalID     string    `json:"animalId"`
	AdopterID    string    `json:"usuarioId"`
	AdopterName  string    `json:"nomeUsuario"`
	AdopterEmail string    `json:"emailUsuario"`
	CreatedAt    time.Time `json:"dataDeInteresse"`
	Status       string    `json:"status"`
}

type adopterInterestDTO struct {
	interestDTO
	Animal struct {
		ID   string `json:"id"`
		Name string `json:"nome"`
	} `json:"animal"`
}

type photoDTO struct {
	URL string `json:"url"`
}

type petDTO struct {
	ID          string     `json:"id"`
	OwnerOrgID  string     `json:"ownerOrgId"`
	Name        string     `json:"nome"`
	Species     string     `json:"especie"`
	Size        string     `json:"porte"`
	AgeYears    int        `json:"idade"`
	Breed       string     `json:"raca"`
	Description string     `json:"descricao"`
	ImageURL    string     `json:"imagemUrl"`
	Photos      []photoDTO `json:"fotosAnimais"`
	Status      string     `json:"status"`
}

// CreatePetInput son los datos para publicar un animal.
type CreatePetInput struct {
	Name        string   `json:"nome"`
	Species     string   `json:"especie"`
	Size        string   `json:"porte,omitempty"`
	AgeYears    int      `json:"idade"`
	Breed       string   `json:"raca,omitempty"`
	Description string   `json:"descricao,omitempty"`
	ImageURL    string   `json:"imagemUrl,omitempty"`
	PhotoURLs   []string `json:"fotos,omitempty"`
}

func (c *Client) RegisterInterest(ctx context.Context, actor workflow.Actor, animalID string) (workflow.Interest, error) {
	var out interestDTO
	err := c.do(ctx, actor, http.MethodPost, "/adoption/animal/"+url.PathEscape(animalID)+"/match", nil, &out)
	if err != nil {
		return workflow.Interest{}, err
	}
	return out.toInterest(), nil
}

func (c *Client) ListInterests(ctx context.Context, actor workflow.Actor, animalID string) ([]workflow.Interest, error) {
	var out []interestDTO
	err := c.do(ctx, actor, http.MethodGet, "/adoption/animal/"+url.PathEscape(animalID)+"/queue", nil, &out)
	if err != nil {
		return nil, err
	}
	items := make([]workflow.Interest, 0, len(out))
	for _, d := range out {
		items = append(items, d.toInterest())
	}
	return items, nil
}

func (c *Client) EvaluateInterest(ctx context.Context, actor workflow.Actor, interestID string, decision workflow.Status) (workflow.Interest, error) {
	in := map[string]string{"status": string(decision)}
	var out interestDTO
	err := c.do(ctx, actor, http.MethodPut, "/adoption/interest/"+url.PathEscape(interestID)+"/evaluate", in, &out)
	if err != nil {
		return workflow.Interest{}, err
	}
	return out.toInterest(), nil
}

func (c *Client) ListMyInterests(ctx context.Context, actor workflow.Actor) ([]workflow.AdopterInterest, error) {
	var out []adopterInterestDTO
	if err := c.do(ctx, actor, http.MethodGet, "/adoption/adopter", nil, &out); err != nil {
		return nil, err
	}
	items := make([]workflow.AdopterInterest, 0, len(out))
	for _, d := range out {
		items = append(items, workflow.AdopterInterest{
			Interest: d.toInterest(),
			Pet:      workflow.PetRef{ID: d.Animal.ID, Name: d.Animal.Name},
		})
	}
	return items, nil
}

func (c *Client) GetPet(ctx context.Context, actor workflow.Actor, petID string) (workflow.Pet, error) {
	var out petDTO
	if err := c.do(ctx, actor, http.MethodGet, "/animals/"+url.PathEscape(petID), nil, &out); err != nil {
		return workflow.Pet{}, err
	}
	return out.toPet(), nil
}

func (c *Client) ListMyPets(ctx context.Context, actor workflow.Actor) ([]workflow.Pet, error) {
	return c.listPets(ctx, actor, "/me/animals")
}

// ListPets es el catálogo público; status vacío => todos.
func (c *Client) ListPets(ctx context.Context, actor workflow.Actor, status string) ([]workflow.Pet, error) {
	path := "/animals"
	if s := strings.TrimSpace(status); s != "" {
		path += "?status=" + url.QueryEscape(s)
	}
	return c.listPets(ctx, actor, path)
}

func (c *Client) CreatePet(ctx context.Context, actor workflow.Actor, in CreatePetInput) (workflow.Pet, error) {
	var out petDTO
	if err := c.do(ctx, actor, http.MethodPost, "/animals", in, &out); err != nil {
		return workflow.Pet{}, err
	}
	return out.toPet(), nil
}

// SetPetStatus cambia DISPONIVEL / ADOTADO.
func (c *Client) SetPetStatus(ctx context.Context, actor workflow.Actor, petID, status string) (workflow.Pet, error) {
	var out petDTO
	in := map[string]string{"status": status}
	if err := c.do(ctx, actor, http.MethodPatch, "/animals/"+url.PathEscape(petID)+"/status", in, &out); err != nil {
		return workflow.Pet{}, err
	}
	return out.toPet(), nil
}

func (c *Client) listPets(ctx context.Context, actor workflow.Actor, path string) ([]workflow.Pet, error) {
	var out []petDTO
	if err := c.do(ctx, actor, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	items := make([]workflow.Pet, 0, len(out))
	for _, d := range out {
		items = append(items, d.toPet())
	}
	return items, nil
}

func (c *Client) do(ctx context.Context, actor workflow.Actor, method, path string, in, out any) error {
	if err := c.http.DoJSON(ctx, method, path, actorHeaders(actor), in, out); err != nil {
		return mapError(err)
	}
	return nil
}

// actorHeaders: bearer si hay token; si no, headers del modo dev.
func actorHeaders(actor workflow.Actor) map[string]string {
	if h := httpclient.BearerHeaders(actor.Token); h != nil {
		return h
	}
	if strings.TrimSpace(actor.ID) == "" {
		return nil
	}
	h := map[string]string{
		middleware.HeaderDebugUserID:   actor.ID,
		middleware.HeaderDebugUserRole: string(actor.Role),
	}
	if actor.Name != "" {
		h[middleware.HeaderDebugUserName] = actor.Name
	}
	if actor.Email != "" {
		h[middleware.HeaderDebugUserEmail] = actor.Email
	}
	return h
}

func mapError(err error) error {
	if errors.Is(err, httpclient.ErrTransport) {
		return fmt.Errorf("%w: %w", workflow.ErrUnavailable, err)
	}

	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	re := &workflow.RemoteError{
		Kind:    kindFor(httpErr.StatusCode),
		Status:  httpErr.StatusCode,
		Code:    httpErr.Code,
		Message: httpErr.Message,
	}

	var body struct {
		Extensions struct {
			Interest *interestDTO `json:"interest"`
		} `json:"extensions"`
	}
	if httpErr.Body != "" && json.Unmarshal([]byte(httpErr.Body), &body) == nil && body.Extensions.Interest != nil {
		i := body.Extensions.Interest.toInterest()
		re.Interest = &i
	}
	return re
}

func kindFor(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return workflow.ErrInvalidInput
	case status == http.StatusUnauthorized:
		return workflow.ErrUnauthorized
	case status == http.StatusForbidden:
		return workflow.ErrForbidden
	case status == http.StatusNotFound:
		return workflow.ErrNotFound
	case status == http.StatusConflict:
		return workflow.ErrConflict
	default:
		return workflow.ErrUnavailable
	}
}

func (d interestDTO) toInterest() workflow.Interest {
	return workflow.Interest{
		ID:           d.ID,
		AnimalID:     d.AnimalID,
		AdopterID:    d.AdopterID,
		AdopterName:  d.AdopterName,
		AdopterEmail: d.AdopterEmail,
		Status:       workflow.ParseStatus(d.Status),
		CreatedAt:    d.CreatedAt,
	}
}

func (d petDTO) toPet() workflow.Pet {
	p := workflow.Pet{
		ID:          d.ID,
		OwnerOrgID:  d.OwnerOrgID,
		Name:        d.Name,
		Species:     d.Species,
		Size:        d.Size,
		AgeYears:    d.AgeYears,
		Breed:       d.Breed,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Status:      d.Status,
	}
	for _, ph := range d.Photos {
		p.PhotoURLs = append(p.PhotoURLs, ph.URL)
	}
	return p
}
