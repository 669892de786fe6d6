// Package render turns show records into display-ready cards.
package render

import (
	"strconv"
	"strings"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

const (
	NoSummaryText = "No summary available"
	NoGenresText  = "Unknown"
	NoRatingText  = "N/A"
)

// Card is the rendered summary of a single show.
type Card struct {
	ImageURL string `json:"imageUrl"`
	// FallbackImageURL replaces ImageURL when the image fails to load.
	FallbackImageURL string `json:"fallbackImageUrl"`
	Name             string `json:"name"`
	AltText          string `json:"altText"`
	Rating           string `json:"rating"`
	Genres           string `json:"genres"`
	Summary          string `json:"summary"`
}

// CardRenderer builds cards. It has no side effects and is safe for concurrent use.
type CardRenderer struct {
	placeholderURL string
}

// NewCardRenderer creates a renderer that uses placeholderURL for shows without an image.
func NewCardRenderer(placeholderURL string) *CardRenderer {
	if placeholderURL == "" {
		placeholderURL = config.DefaultPlaceholderImageURL
	}
	return &CardRenderer{placeholderURL: placeholderURL}
}

// PlaceholderURL returns the image used when a show has none.
func (r *CardRenderer) PlaceholderURL() string {
	return r.placeholderURL
}

// Render converts one show into a card.
func (r *CardRenderer) Render(show models.Show) Card {
	return Card{
		ImageURL:         r.imageURL(show),
		FallbackImageURL: r.placeholderURL,
		Name:             show.Name,
		AltText:          show.Name,
		Rating:           formatRating(show.Rating),
		Genres:           formatGenres(show.Genres),
		Summary:          formatSummary(show.Summary),
	}
}

// RenderAll renders shows preserving their order.
func (r *CardRenderer) RenderAll(shows []models.Show) []Card {
	cards := make([]Card, 0, len(shows))
	for _, show := range shows {
		cards = append(cards, r.Render(show))
	}
	return cards
}

func (r *CardRenderer) imageURL(show models.Show) string {
	if show.Image != nil && show.Image.Medium != "" {
		return show.Image.Medium
	}
	return r.placeholderURL
}

func formatRating(rating *models.Rating) string {
	if rating == nil || rating.Average == nil {
		return NoRatingText
	}
	return strconv.FormatFloat(*rating.Average, 'f', 1, 64)
}

func formatGenres(genres []string) string {
	if len(genres) == 0 {
		return NoGenresText
	}
	return strings.Join(genres, ", ")
}

func formatSummary(summary *string) string {
	if summary == nil || *summary == "" {
		return NoSummaryText
	}
	text, err := parser.StripMarkup(*summary)
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Could not strip summary markup, showing it raw")
		return *summary
	}
	return text
}
