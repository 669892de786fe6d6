// Package tui is the terminal front end: a Bubble Tea program whose event loop
// dispatches key presses and request completions to a search.Controller.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/render"
	"github.com/Belphemur/ShowSearch/internal/search"
)

const defaultWidth = 80

// Model is the Bubble Tea model of the search screen.
type Model struct {
	ctx       context.Context
	ctrl      *search.Controller
	view      *search.View
	input     textinput.Model
	spinner   spinner.Model
	styles    Styles
	demoQuery string
	demoDelay time.Duration
	width     int
}

// New builds the model. The query field starts focused.
func New(ctx context.Context, cfg *config.Config, searcher search.Searcher) Model {
	view := search.NewView()

	input := textinput.New()
	input.Placeholder = "Search for TV shows..."
	input.Prompt = "> "
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		ctrl:      search.NewController(searcher, render.NewCardRenderer(cfg.PlaceholderImageURL), view),
		view:      view,
		input:     input,
		spinner:   sp,
		styles:    DefaultStyles(),
		demoQuery: cfg.Demo.Query,
		demoDelay: cfg.DemoDelay(),
		width:     defaultWidth,
	}
}

// Run starts the program and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, searcher search.Searcher) error {
	m := New(ctx, cfg, searcher)
	defer m.ctrl.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.demoQuery != "" {
		cmds = append(cmds, demoAfter(m.demoDelay))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.ctrl.Close()
			return m, tea.Quit
		case "enter":
			return m.submit(m.input.Value())
		}
	case demoMsg:
		m.input.SetValue(m.demoQuery)
		m.input.CursorEnd()
		return m.submit(m.demoQuery)
	case resultMsg:
		m.ctrl.Complete(msg.ticket, msg.results, msg.err)
		return m, nil
	case spinner.TickMsg:
		if !m.view.Snapshot().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(query string) (tea.Model, tea.Cmd) {
	ticket, err := m.ctrl.Begin(m.ctx, query)
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, fetch(m.ctrl, ticket))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("TV Show Search"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	snap := m.view.Snapshot()
	if snap.Loading {
		b.WriteString(m.spinner.View() + " Searching...\n")
	}
	if snap.ErrorVisible {
		b.WriteString(m.styles.Error.Render(snap.ErrorMessage) + "\n")
	}
	if snap.NoResults {
		b.WriteString(m.styles.Muted.Render("No shows found. Try a different search term.") + "\n")
	}
	for _, card := range snap.Cards {
		b.WriteString(m.renderCard(card))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render("enter: search • esc: quit"))
	return b.String()
}

func (m Model) renderCard(card render.Card) string {
	inner := m.width - m.styles.Card.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	lines := []string{
		m.styles.Name.Render(card.Name),
		m.styles.Rating.Render("★ "+card.Rating) + "  " + m.styles.Genres.Render(card.Genres),
		m.styles.Summary.Width(inner).Render(card.Summary),
		m.styles.Muted.Render(card.ImageURL),
	}
	return m.styles.Card.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
