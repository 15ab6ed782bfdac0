package workflow

import (
	"context"
	"strings"
	"sync"
)

type QueueState int

const (
	QueueIdle QueueState = iota
	QueueLoading
	QueueLoaded
	QueueFailed
)

func (s QueueState) String() string {
	switch s {
	case QueueLoading:
		return "loading"
	case QueueLoaded:
		return "loaded"
	case QueueFailed:
		return "failed"
	default:
		return "idle"
	}
}

// QueueSnapshot es una copia inmutable del estado de la vista.
type QueueSnapshot struct {
	AnimalID string
	State    QueueState
	Items    []Interest
	Err      error
	// Stale: hubo remociones optimistas desde el último Load.
	Stale bool
}

// Empty distingue "cargado sin interesados" de cargando o fallido.
func (s QueueSnapshot) Empty() bool {
	return s.State == QueueLoaded && len(s.Items) == 0
}

// QueueView es la fila de interesados PENDING de un animal.
// No autoriza nada del lado cliente: si el actor no es dueño, el servidor responde 403 y la vista queda Failed.
type QueueView struct {
	store    Store
	actor    Actor
	animalID string

	mu     sync.Mutex
	state  QueueState
	items  []Interest
	err    error
	stale  bool
	gen    uint64
	closed bool
}

func NewQueueView(store Store, actor Actor, animalID string) *QueueView {
	return &QueueView{
		store:    store,
		actor:    actor,
		animalID: strings.TrimSpace(animalID),
	}
}

// Load consulta la fila de nuevo (sin cache). Si mientras tanto se llamó Close
// o arrancó otro Load, el resultado se descarta y devuelve ErrDiscarded.
func (v *QueueView) Load(ctx context.Context) error {
	if v.animalID == "" {
		return ErrInvalidInput
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrDiscarded
	}
	v.gen++
	gen := v.gen
	v.state = QueueLoading
	v.err = nil
	v.mu.Unlock()

	items, err := v.store.ListInterests(ctx, v.actor, v.animalID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.gen {
		return ErrDiscarded
	}
	if err != nil {
		v.state = QueueFailed
		v.err = err
		return err
	}
	v.state = QueueLoaded
	v.items = append([]Interest(nil), items...)
	v.stale = false
	return nil
}

// Remove saca un interés de la proyección local (optimista) y la marca Stale.
func (v *QueueView) Remove(interestID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for idx, i := range v.items {
		if i.ID != interestID {
			continue
		}
		items := make([]Interest, 0, len(v.items)-1)
		items = append(items, v.items[:idx]...)
		items = append(items, v.items[idx+1:]...)
		v.items = items
		v.stale = true
		return true
	}
	return false
}

// Find busca un interés cargado por id.
func (v *QueueView) Find(interestID string) (Interest, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, i := range v.items {
		if i.ID == interestID {
			return i, true
		}
	}
	return Interest{}, false
}

func (v *QueueView) Snapshot() QueueSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return QueueSnapshot{
		AnimalID: v.animalID,
		State:    v.state,
		Items:    append([]Interest(nil), v.items...),
		Err:      v.err,
		Stale:    v.stale,
	}
}

func (v *QueueView) AnimalID() string { return v.animalID }

// Close desmonta la vista. Las respuestas en vuelo se descartan; no se cancelan.
func (v *QueueView) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

// QueueBoard es el panel de la organización: sus animales, cada uno con su fila
// que solo se consulta al expandirlo.
type QueueBoard struct {
	store Store
	actor Actor

	mu    sync.Mutex
	pets  []Pet
	views map[string]*QueueView // solo las filas expandidas
}

func NewQueueBoard(store Store, actor Actor) *QueueBoard {
	return &QueueBoard{
		store: store,
		actor: actor,
		views: map[string]*QueueView{},
	}
}

// LoadPets lista los animales de la organización. No toca ninguna fila.
func (b *QueueBoard) LoadPets(ctx context.Context) ([]Pet, error) {
	pets, err := b.store.ListMyPets(ctx, b.actor)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.pets = append([]Pet(nil), pets...)
	b.mu.Unlock()
	return pets, nil
}

// Expand muestra la fila del animal y la consulta (siempre, sin cache).
func (b *QueueBoard) Expand(ctx context.Context, petID string) (*QueueView, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}

	b.mu.Lock()
	v, ok := b.views[petID]
	if !ok {
		v = NewQueueView(b.store, b.actor, petID)
		b.views[petID] = v
	}
	b.mu.Unlock()

	return v, v.Load(ctx)
}

// Collapse oculta la fila sin consultar nada. Una carga en vuelo se descarta.
func (b *QueueBoard) Collapse(petID string) {
	b.mu.Lock()
	v, ok := b.views[petID]
	delete(b.views, petID)
	b.mu.Unlock()

	if ok {
		v.Close()
	}
}

// Refresh vuelve a consultar una fila expandida.
func (b *QueueBoard) Refresh(ctx context.Context, petID string) error {
	v, ok := b.View(petID)
	if !ok {
		return ErrNotFound
	}
	return v.Load(ctx)
}

// View devuelve la fila si está expandida.
func (b *QueueBoard) View(petID string) (*QueueView, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.views[petID]
	return v, ok
}

// Pets devuelve los animales del último LoadPets.
func (b *QueueBoard) Pets() []Pet {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Pet(nil), b.pets...)
}

// Close desmonta todas las filas.
func (b *QueueBoard) Close() {
	b.mu.Lock()
	views := b.views
	b.views = map[string]*QueueView{}
	b.mu.Unlock()

	for _, v := range views {
		v.Close()
	}
}
