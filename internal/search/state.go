package search

import "github.com/Belphemur/ShowSearch/internal/render"

// State is the display mode of a front end. Exactly one is active at a time.
type State int

const (
	StateIdle State = iota
	StateLoading
	StatePopulated
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is something that happened to a search.
type Event interface {
	isEvent()
}

// Started is sent when a valid query was submitted and its request issued.
type Started struct{}

// Rejected is sent when the query failed validation. No request was made.
type Rejected struct {
	Message string
}

// Succeeded is sent when the latest request returned. Cards may be empty.
type Succeeded struct {
	Cards []render.Card
}

// Failed is sent when the latest request failed.
type Failed struct {
	Message string
}

func (Started) isEvent()   {}
func (Rejected) isEvent()  {}
func (Succeeded) isEvent() {}
func (Failed) isEvent()    {}

// EffectKind enumerates the operations of the Renderer port.
type EffectKind int

const (
	EffectShowLoading EffectKind = iota
	EffectHideLoading
	EffectShowError
	EffectHideError
	EffectClearResults
	EffectShowNoResults
	EffectHideNoResults
	EffectAppendCard
)

// Effect is one Renderer call to perform.
type Effect struct {
	Kind    EffectKind
	Message string
	Card    render.Card
}

// Apply performs the effect on r.
func (e Effect) Apply(r Renderer) {
	switch e.Kind {
	case EffectShowLoading:
		r.SetLoading(true)
	case EffectHideLoading:
		r.SetLoading(false)
	case EffectShowError:
		r.ShowError(e.Message)
	case EffectHideError:
		r.HideError()
	case EffectClearResults:
		r.ClearResults()
	case EffectShowNoResults:
		r.SetNoResults(true)
	case EffectHideNoResults:
		r.SetNoResults(false)
	case EffectAppendCard:
		r.AppendCard(e.Card)
	}
}

// Transition computes the next state and the display changes an event causes.
// Every event fully determines what is shown next, whatever the current state.
func Transition(_ State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case Started:
		return StateLoading, []Effect{
			{Kind: EffectShowLoading},
			{Kind: EffectHideError},
			{Kind: EffectClearResults},
			{Kind: EffectHideNoResults},
		}
	case Rejected:
		return StateError, []Effect{
			{Kind: EffectHideLoading},
			{Kind: EffectClearResults},
			{Kind: EffectHideNoResults},
			{Kind: EffectShowError, Message: ev.Message},
		}
	case Succeeded:
		if len(ev.Cards) == 0 {
			return StateEmpty, []Effect{
				{Kind: EffectHideLoading},
				{Kind: EffectShowNoResults},
			}
		}
		effects := make([]Effect, 0, len(ev.Cards)+3)
		effects = append(effects,
			Effect{Kind: EffectHideLoading},
			Effect{Kind: EffectClearResults},
			Effect{Kind: EffectHideNoResults},
		)
		for _, card := range ev.Cards {
			effects = append(effects, Effect{Kind: EffectAppendCard, Card: card})
		}
		return StatePopulated, effects
	case Failed:
		return StateError, []Effect{
			{Kind: EffectHideLoading},
			{Kind: EffectShowError, Message: ev.Message},
		}
	}
	panic("search: unknown event type")
}
