package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aqipulse/aqipulse/internal/domain/models"
	"github.com/aqipulse/aqipulse/internal/logger"
)

const (
	// DefaultBaseURL is the OpenWeatherMap air pollution history endpoint.
	DefaultBaseURL = "http://api.openweathermap.org/data/2.5/air_pollution/history"

	// chunkSpan caps each upstream request at 7 days. Longer windows
	// are split and fetched concurrently.
	chunkSpan = 7 * 24 * time.Hour

	maxParallelFetch = 4
)

// OpenWeatherProvider fetches air pollution history from the
// OpenWeatherMap API. Each request is a single attempt; callers decide
// whether a failed run is retried.
type OpenWeatherProvider struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewOpenWeatherProvider builds a provider talking to baseURL with the
// given key. An empty baseURL falls back to DefaultBaseURL; a nil
// client falls back to http.DefaultClient.
func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenWeatherProvider{client: client, apiKey: apiKey, baseURL: baseURL}
}

// FetchHistory retrieves the raw readings for loc inside w, splitting
// the window into 7-day chunks fetched concurrently. Records are
// returned in window order; the first failing chunk cancels the rest
// and fails the whole fetch. An empty window yields no records.
func (p *OpenWeatherProvider) FetchHistory(ctx context.Context, loc Location, w Window) ([]models.RawReading, error) {
	chunks := splitWindow(w)
	if len(chunks) == 0 {
		return nil, nil
	}
	if len(chunks) == 1 {
		return p.fetchChunk(ctx, loc, chunks[0])
	}

	maxParallel := maxParallelFetch
	if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Debug().
		Int("chunks", len(chunks)).
		Int("max_parallel", maxParallel).
		Str("location", loc.Key()).
		Msg("history fetch fan-out")

	// errgroup cancels the remaining chunks on first error.
	results := make([][]models.RawReading, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, c := range chunks {
		idx := i
		chunk := c
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			out, err := p.fetchChunk(gctx, loc, chunk)
			if err != nil {
				return err
			}
			results[idx] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []models.RawReading
	for _, part := range results {
		merged = append(merged, part...)
	}
	return merged, nil
}

// fetchChunk performs one upstream request for a window no longer than
// chunkSpan and maps the response body onto raw readings. Scalars stay
// pointers so that normalization can tell an omitted field from a zero.
func (p *OpenWeatherProvider) fetchChunk(ctx context.Context, loc Location, w Window) ([]models.RawReading, error) {
	if p.apiKey == "" {
		return nil, &TransportError{Err: errors.New("api key is not configured")}
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(loc.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(loc.Lon, 'f', -1, 64))
	q.Set("start", strconv.FormatInt(w.Start.Unix(), 10))
	q.Set("end", strconv.FormatInt(w.End.Unix(), 10))
	q.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", p.baseURL, q.Encode()), nil)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var payload struct {
		List []struct {
			Dt   *int64 `json:"dt"`
			Main struct {
				AQI *int `json:"aqi"`
			} `json:"main"`
			Components map[string]float64 `json:"components"`
		} `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &TransportError{Err: fmt.Errorf("decode response: %w", err)}
	}

	readings := make([]models.RawReading, 0, len(payload.List))
	for _, item := range payload.List {
		readings = append(readings, models.RawReading{
			UnixTime:   item.Dt,
			AQI:        item.Main.AQI,
			Components: item.Components,
		})
	}
	return readings, nil
}

// splitWindow cuts w into consecutive chunks of at most chunkSpan.
// Inverted or empty windows produce no chunks.
func splitWindow(w Window) []Window {
	if !w.End.After(w.Start) {
		return nil
	}
	var chunks []Window
	for start := w.Start; start.Before(w.End); start = start.Add(chunkSpan) {
		end := start.Add(chunkSpan)
		if end.After(w.End) {
			end = w.End
		}
		chunks = append(chunks, Window{Start: start, End: end})
	}
	return chunks
}
