package sl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const DefaultBaseURL = "https://transport.integration.sl.se/v1"

// Client talks to the SL Transport API. The API is keyless and public so
// there is no authentication handling. Each call is stateless - no caching
// and no conditional requests - a failed call is simply retried on the next
// poll cycle by the caller.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) get(ctx context.Context, url string, into any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	jsonBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{URL: url, Err: err}
	}

	if err := json.Unmarshal(jsonBytes, into); err != nil {
		return &ParseError{URL: url, Err: err}
	}

	return nil
}

// Sites returns every site in the SL network, in upstream order.
func (c *Client) Sites(ctx context.Context) ([]Site, error) {
	var sites []Site

	url := fmt.Sprintf("%s/sites?expand=true", c.BaseURL)
	if err := c.get(ctx, url, &sites); err != nil {
		return nil, err
	}

	return sites, nil
}

// SearchSites filters the sites list by a case-insensitive substring match
// on the site name. Upstream order is preserved and an empty result is not
// an error.
func (c *Client) SearchSites(ctx context.Context, query string) ([]Site, error) {
	sites, err := c.Sites(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Site
	for _, site := range sites {
		if strings.Contains(strings.ToLower(site.Name), query) {
			matches = append(matches, site)
		}
	}

	return matches, nil
}

// Departures returns the upcoming departures and the site level deviations
// for a single site.
func (c *Client) Departures(ctx context.Context, siteID string) (*DeparturesResponse, error) {
	var departuresResponse DeparturesResponse

	url := fmt.Sprintf("%s/sites/%s/departures", c.BaseURL, siteID)
	if err := c.get(ctx, url, &departuresResponse); err != nil {
		return nil, err
	}

	return &departuresResponse, nil
}
