// Package googleapi is a minimal client for the Google Business reviews
// API. Only the review listing call is implemented; the sync service is
// its sole consumer.
package googleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://mybusiness.googleapis.com/v4"

// Star ratings arrive as ordinal labels, not numbers.
const (
	StarOne   = "ONE"
	StarTwo   = "TWO"
	StarThree = "THREE"
	StarFour  = "FOUR"
	StarFive  = "FIVE"
)

// Review is one review as returned by the API, reduced to the fields the
// sync consumes.
type Review struct {
	ReviewID   string   `json:"reviewId"`
	Reviewer   Reviewer `json:"reviewer"`
	StarRating string   `json:"starRating"`
	Comment    string   `json:"comment"`
	CreateTime string   `json:"createTime"` // RFC3339
}

// Reviewer identifies the review author.
type Reviewer struct {
	DisplayName string `json:"displayName"`
}

// StarValue maps the ordinal star labels onto the 1..5 integer scale.
// Unknown labels map to 5, mirroring the site's historical behavior.
func StarValue(label string) int {
	switch label {
	case StarOne:
		return 1
	case StarTwo:
		return 2
	case StarThree:
		return 3
	case StarFour:
		return 4
	case StarFive:
		return 5
	}
	return 5
}

// Client calls the reviews API for one configured business location.
type Client struct {
	baseURL    string
	token      string
	accountID  string
	locationID string
	httpClient *http.Client
}

// NewClient builds a Client. Any empty credential leaves the client
// unconfigured; Configured() lets callers degrade instead of erroring at
// startup. baseURL overrides the production endpoint for tests.
func NewClient(token, accountID, locationID, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		accountID:  accountID,
		locationID: locationID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Configured reports whether credentials and the business location are
// all present.
func (c *Client) Configured() bool {
	return c.token != "" && c.accountID != "" && c.locationID != ""
}

// ListReviews fetches the current review set for the configured location.
func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	url := fmt.Sprintf("%s/accounts/%s/locations/%s/reviews", c.baseURL, c.accountID, c.locationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("reviews list returned %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Reviews []Review `json:"reviews"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.Reviews, nil
}
