// Package wca is a client for the parts of the WCA API used by remote imports.
package wca

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/soyrandom1/scrambles-matcher/internal/config"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer"
	"github.com/soyrandom1/scrambles-matcher/pkg/importer/models"
)

const (
	// managedLookback is how far back managed competitions are listed.
	managedLookback = 30 * 24 * time.Hour
	// maxErrorBody caps how much of an error response is kept.
	maxErrorBody = 512
)

// Scopes are the OAuth scopes needed to read private WCIFs.
var Scopes = []string{"public", "manage_competitions"}

// CompetitionSummary is an entry of the managed competitions list.
type CompetitionSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	CountryISO2 string `json:"country_iso2"`
}

// Client is a rate-limited WCA API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
	now        func() time.Time
}

// NewClient creates a WCA API client. When cfg carries an access token every
// request is authorized with it.
func NewClient(cfg config.WCAConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := &http.Client{}
	if cfg.AccessToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = cfg.Timeout

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
		now:        time.Now,
	}
}

// OAuthConfig returns the OAuth2 configuration of the WCA website.
func OAuthConfig(cfg config.WCAConfig) *oauth2.Config {
	base := strings.TrimRight(cfg.BaseURL, "/")
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  base + "/oauth/authorize",
			TokenURL: base + "/oauth/token",
		},
	}
}

// ManagedCompetitions lists the recent competitions the token owner manages.
func (c *Client) ManagedCompetitions(ctx context.Context) ([]CompetitionSummary, error) {
	q := url.Values{}
	q.Set("managed_by_me", "true")
	q.Set("start", c.now().Add(-managedLookback).Format("2006-01-02"))

	var competitions []CompetitionSummary
	if err := c.doRequest(ctx, "/api/v0/competitions?"+q.Encode(), &competitions); err != nil {
		return nil, err
	}
	return competitions, nil
}

// FetchWCIF fetches the private WCIF of a competition.
func (c *Client) FetchWCIF(ctx context.Context, competitionID string) (*models.Competition, error) {
	var raw json.RawMessage
	path := "/api/v0/competitions/" + url.PathEscape(competitionID) + "/wcif"
	if err := c.doRequest(ctx, path, &raw); err != nil {
		return nil, err
	}

	var comp models.Competition
	if err := json.Unmarshal(raw, &comp); err != nil {
		return nil, importer.NewImportError(importer.SourceWCA, "", err)
	}
	return &comp, nil
}

// ImportFromCompetition fetches a competition WCIF and hands it to load.
func (c *Client) ImportFromCompetition(ctx context.Context, competitionID string, load importer.Loader) error {
	comp, err := c.FetchWCIF(ctx, competitionID)
	if err != nil {
		return err
	}
	load(comp)
	return nil
}

// doRequest makes a rate-limited GET request and decodes the JSON response.
func (c *Client) doRequest(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wca request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "wca request",
		slog.String("path", req.URL.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrCompetitionNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode wca response: %w", err)
	}
	return nil
}
