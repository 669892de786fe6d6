package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"

	"github.com/Belphemur/ShowSearch/internal/models"
)

// StringPtr is a helper for creating *string values in tests
func StringPtr(v string) *string {
	return &v
}

// Float64Ptr is a helper for creating *float64 values in tests
func Float64Ptr(v float64) *float64 {
	return &v
}

// ShowOptions describes a show entry of a /search/shows response
type ShowOptions struct {
	ID            int
	Name          string
	ImageMedium   string // Empty omits the image object
	Summary       *string
	Genres        []string
	RatingAverage *float64
}

// GirlsShow is the show returned for the demo query
func GirlsShow() ShowOptions {
	return ShowOptions{
		ID:            139,
		Name:          "Girls",
		ImageMedium:   "https://static.tvmaze.com/uploads/images/medium_portrait/31/78286.jpg",
		Summary:       StringPtr("<p>HBO show</p>"),
		Genres:        []string{"Drama", "Comedy"},
		RatingAverage: Float64Ptr(8.0),
	}
}

// BuildShow converts options into the model the client decodes
func BuildShow(opts ShowOptions) models.Show {
	show := models.Show{
		ID:      opts.ID,
		Name:    opts.Name,
		Summary: opts.Summary,
		Genres:  opts.Genres,
		Rating:  &models.Rating{Average: opts.RatingAverage},
	}
	if show.Genres == nil {
		show.Genres = []string{}
	}
	if opts.ImageMedium != "" {
		show.Image = &models.Image{Medium: opts.ImageMedium, Original: opts.ImageMedium}
	}
	return show
}

// GenerateSearchJSON builds a /search/shows response body in TVMaze's format
func GenerateSearchJSON(shows ...ShowOptions) []byte {
	results := make([]models.SearchResult, 0, len(shows))
	for i, opts := range shows {
		results = append(results, models.SearchResult{
			Score: 1 / float64(i+1),
			Show:  BuildShow(opts),
		})
	}
	body, err := json.Marshal(results)
	if err != nil {
		panic(err)
	}
	return body
}

// MockTVMaze is an httptest server that answers /search/shows from a per-query table.
// Unknown queries get an empty array.
type MockTVMaze struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string][]ShowOptions
	status    int
	queries   []string
	hits      atomic.Int64
}

// NewMockTVMaze starts a mock server. Close it with Close().
func NewMockTVMaze() *MockTVMaze {
	m := &MockTVMaze{responses: make(map[string][]ShowOptions)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

// SetResults registers the shows returned for query.
func (m *MockTVMaze) SetResults(query string, shows ...ShowOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[query] = shows
}

// FailWith makes every subsequent request answer with status.
func (m *MockTVMaze) FailWith(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// Hits returns how many search requests reached the server.
func (m *MockTVMaze) Hits() int {
	return int(m.hits.Load())
}

// Queries returns the decoded q parameters received, in order.
func (m *MockTVMaze) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

func (m *MockTVMaze) handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/search/shows" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	m.hits.Add(1)

	q := r.URL.Query().Get("q")
	m.mu.Lock()
	m.queries = append(m.queries, q)
	status := m.status
	shows := m.responses[q]
	m.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(GenerateSearchJSON(shows...))
}
