package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/parser"
)

// SearchShows issues GET {base}/search/shows?q={query}. Any non-2xx status is
// reported as *apperrors.ErrTransport, an undecodable body as
// *apperrors.ErrMalformedResponse.
func (c *client) SearchShows(ctx context.Context, query string) ([]models.SearchResult, error) {
	logger := config.GetLogger()
	searchURL := fmt.Sprintf("%s/search/shows?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &apperrors.ErrTransport{URL: searchURL, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	logger.Debug().Str("url", searchURL).Msg("Searching shows")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, &apperrors.ErrTransport{URL: searchURL, Err: err}
	}
	defer resp.Body.Close()
	metrics.UpstreamRequestDuration.WithLabelValues(strconv.Itoa(resp.StatusCode)).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn().Str("url", searchURL).Int("status", resp.StatusCode).Msg("Search API returned non-2xx status")
		return nil, apperrors.NewStatusError(searchURL, resp.StatusCode)
	}

	body, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, &apperrors.ErrMalformedResponse{Err: err}
	}

	var results []models.SearchResult
	if err := json.NewDecoder(body).Decode(&results); err != nil {
		// Cancellation or timeout mid-body is a transport failure
		if ctx.Err() != nil {
			return nil, &apperrors.ErrTransport{URL: searchURL, Err: ctx.Err()}
		}
		return nil, &apperrors.ErrMalformedResponse{Err: err}
	}

	logger.Debug().Str("url", searchURL).Int("results", len(results)).Msg("Search completed")
	return results, nil
}
