package models

// SearchResult is one element of the /search/shows response array
type SearchResult struct {
	Score float64 `json:"score"`
	Show  Show    `json:"show"`
}

// Show represents a TV show as returned by TVMaze
type Show struct {
	ID        int      `json:"id"`
	URL       string   `json:"url"`
	Name      string   `json:"name"`
	Language  string   `json:"language"`
	Genres    []string `json:"genres"`
	Status    string   `json:"status"`
	Premiered string   `json:"premiered"`
	Rating    *Rating  `json:"rating"`
	Image     *Image   `json:"image"`
	Summary   *string  `json:"summary"`
}

// Image holds the poster URLs of a show
type Image struct {
	Medium   string `json:"medium"`
	Original string `json:"original"`
}

// Rating holds the average user rating; Average is nil when the show is unrated
type Rating struct {
	Average *float64 `json:"average"`
}

// Shows extracts the show records from a result set, preserving order
func Shows(results []SearchResult) []Show {
	shows := make([]Show, 0, len(results))
	for _, r := range results {
		shows = append(shows, r.Show)
	}
	return shows
}
