package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/search"
)

// demoMsg fires once, shortly after start-up.
type demoMsg struct{}

// resultMsg carries the outcome of one ticket's request back to the event loop.
type resultMsg struct {
	ticket  *search.Ticket
	results []models.SearchResult
	err     error
}

func demoAfter(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return demoMsg{} })
}

func fetch(ctrl *search.Controller, ticket *search.Ticket) tea.Cmd {
	return func() tea.Msg {
		results, err := ctrl.Fetch(ticket)
		return resultMsg{ticket: ticket, results: results, err: err}
	}
}
