// Package search holds the SearchController: it validates a query, issues one
// request per submission and drives a Renderer through the display states.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/diagnostics"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/render"
)

// ErrSuperseded is returned by Submit when a newer submission replaced this one
// before it completed. The display was left to the newer submission.
var ErrSuperseded = errors.New("search superseded by a newer submission")

// Searcher performs the upstream request. client.Client satisfies it.
type Searcher interface {
	SearchShows(ctx context.Context, query string) ([]models.SearchResult, error)
}

// Ticket identifies one accepted submission.
type Ticket struct {
	Seq   uint64
	Query string
	ctx   context.Context
}

// Context is cancelled when a newer submission supersedes the ticket.
func (t *Ticket) Context() context.Context {
	return t.ctx
}

// Controller owns the display state. Only the most recent submission may
// change the display: every submission gets a sequence number, starting one
// cancels the request in flight, and completions carrying an older number are
// dropped.
type Controller struct {
	searcher Searcher
	cards    *render.CardRenderer
	view     Renderer

	mu     sync.Mutex
	state  State
	seq    uint64
	cancel context.CancelFunc
}

// NewController creates a controller in StateIdle. It does not touch view.
func NewController(searcher Searcher, cards *render.CardRenderer, view Renderer) *Controller {
	return &Controller{
		searcher: searcher,
		cards:    cards,
		view:     view,
		state:    StateIdle,
	}
}

// State returns the current display state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit runs a whole search: Begin, the request, then Complete. It returns
// the validation or transport error the display shows, ErrSuperseded when a
// newer submission won, or nil.
func (c *Controller) Submit(ctx context.Context, query string) error {
	ticket, err := c.Begin(ctx, query)
	if err != nil {
		return err
	}
	results, err := c.Fetch(ticket)
	if !c.Complete(ticket, results, err) {
		return ErrSuperseded
	}
	return err
}

// Begin validates query and, when valid, moves the display to StateLoading and
// returns the ticket for the request to issue. A blank query moves the display
// to StateError and returns *apperrors.ErrValidation. Either way any request
// still in flight is cancelled and its result will be ignored.
func (c *Controller) Begin(ctx context.Context, query string) (*Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if strings.TrimSpace(query) == "" {
		verr := apperrors.NewEmptyQueryError()
		c.apply(Rejected{Message: verr.Message})
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, verr
	}

	reqCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.apply(Started{})

	logger := config.GetLogger()
	logger.Info().Str("query", query).Uint64("seq", c.seq).Msg("Search started")

	return &Ticket{Seq: c.seq, Query: query, ctx: reqCtx}, nil
}

// Fetch issues the request for t. It does not touch the display and may run
// on any goroutine.
func (c *Controller) Fetch(t *Ticket) ([]models.SearchResult, error) {
	return c.searcher.SearchShows(t.ctx, t.Query)
}

// Complete applies the outcome of t's request and reports whether it did.
// Outcomes of superseded tickets are discarded.
func (c *Controller) Complete(t *Ticket, results []models.SearchResult, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	logger := config.GetLogger()
	if t.Seq != c.seq {
		logger.Debug().Str("query", t.Query).Uint64("seq", t.Seq).Uint64("latest", c.seq).Msg("Discarding stale search result")
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeStale).Inc()
		return false
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		logger.Error().Err(err).Str("query", t.Query).Uint64("seq", t.Seq).Msg("Search error")
		diagnostics.CaptureSearchError(err, t.Query)
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		c.apply(Failed{Message: apperrors.FetchErrorMessage(err)})
		return true
	}

	cards := c.cards.RenderAll(models.Shows(results))
	outcome := metrics.OutcomeResults
	if len(cards) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	logger.Info().Str("query", t.Query).Uint64("seq", t.Seq).Int("results", len(cards)).Msg("Search completed")

	c.apply(Succeeded{Cards: cards})
	return true
}

// Close cancels the request in flight, if any.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// apply must be called with c.mu held.
func (c *Controller) apply(ev Event) {
	next, effects := Transition(c.state, ev)
	for _, e := range effects {
		e.Apply(c.view)
	}
	c.state = next
}
