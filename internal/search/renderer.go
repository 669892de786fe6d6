package search

import (
	"sync"

	"github.com/Belphemur/ShowSearch/internal/render"
)

// Renderer is the display a Controller drives. Each indicator is shown or
// hidden independently; the Controller keeps them consistent with its State.
type Renderer interface {
	SetLoading(visible bool)
	ShowError(message string)
	HideError()
	ClearResults()
	SetNoResults(visible bool)
	AppendCard(card render.Card)
}

// Snapshot is a copy of everything a View displays.
type Snapshot struct {
	Loading      bool
	ErrorVisible bool
	ErrorMessage string
	NoResults    bool
	Cards        []render.Card
}

// View is an in-memory Renderer. Front ends draw from its snapshots.
type View struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewView returns a View with every indicator hidden.
func NewView() *View {
	return &View{}
}

func (v *View) SetLoading(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Loading = visible
}

func (v *View) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.ErrorVisible = true
	v.snap.ErrorMessage = message
}

func (v *View) HideError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.ErrorVisible = false
}

func (v *View) ClearResults() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Cards = nil
}

func (v *View) SetNoResults(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.NoResults = visible
}

func (v *View) AppendCard(card render.Card) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Cards = append(v.snap.Cards, card)
}

// Snapshot returns a copy safe to read while the View keeps changing.
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	snap := v.snap
	snap.Cards = append([]render.Card(nil), v.snap.Cards...)
	return snap
}
