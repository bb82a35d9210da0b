// Package conceptnet queries the ConceptNet API for "is-a" relations.
// The engine uses the returned hypernym labels to bridge vocabulary gaps
// that the keyword lists do not cover.
package conceptnet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// DefaultBaseURL is the public ConceptNet API endpoint.
const DefaultBaseURL = "https://api.conceptnet.io"

// isaRelation is the edge relation the engine cares about.
const isaRelation = "/r/IsA"

// Client fetches related terms from a ConceptNet-compatible endpoint.
type Client struct {
	BaseURL string

	HTTPClient *http.Client
}

// NewClient creates a Client with the given base URL and request timeout.
// An empty base URL falls back to the public API.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type edgeResponse struct {
	Edges []struct {
		Rel struct {
			ID string `json:"@id"`
		} `json:"rel"`
		End struct {
			Label string `json:"label"`
		} `json:"end"`
	} `json:"edges"`
}

// Related returns the lowercase "is-a" neighbor labels for a term, sorted and
// deduplicated. Network failures, non-success statuses, and malformed
// payloads are returned as errors; the caller decides how to degrade.
func (c *Client) Related(ctx context.Context, term string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/c/en/%s?offset=0&limit=1000", strings.TrimRight(c.BaseURL, "/"), url.PathEscape(term))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("conceptnet: building request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("conceptnet: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("conceptnet: unexpected status %d for %q", resp.StatusCode, term)
	}

	var payload edgeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("conceptnet: decoding response: %w", err)
	}

	seen := make(map[string]struct{})
	var labels []string
	for _, edge := range payload.Edges {
		if edge.Rel.ID != isaRelation {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(edge.End.Label))
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	// Sorted output keeps evidence ordering reproducible across runs.
	sort.Strings(labels)
	return labels, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 3 * time.Second}
}
