package chesscom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cetteup/gmdirectory/internal/domain/player"
)

const (
	DefaultBaseURL   = "https://api.chess.com/pub"
	DefaultUserAgent = "gmdirectory (+https://github.com/cetteup/gmdirectory)"

	titleGrandmaster = "GM"
	countrySegment   = "/country/"
)

// FetchError Returned if the API responds with a non-success status code.
// The message is fixed per operation and safe to show as-is.
type FetchError struct {
	message    string
	requestURL *url.URL
	statusCode int
}

func newFetchError(message string, requestURL *url.URL, statusCode int) *FetchError {
	return &FetchError{
		message:    message,
		requestURL: requestURL,
		statusCode: statusCode,
	}
}

func (e *FetchError) Error() string {
	return e.message
}

func (e *FetchError) StatusCode() int {
	return e.statusCode
}

func (e *FetchError) URL() string {
	return e.requestURL.String()
}

type Client struct {
	baseURL   string
	userAgent string

	client *http.Client
}

// NewClient A zero timeout leaves the http.Client default (no timeout) in place.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: DefaultUserAgent,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) WithTransport(rt http.RoundTripper) *Client {
	c.client.Transport = rt
	return c
}

func (c *Client) WithUserAgent(userAgent string) *Client {
	if userAgent != "" {
		c.userAgent = userAgent
	}
	return c
}

// ListTitledPlayers Usernames of all grandmasters, in the order served by the API
func (c *Client) ListTitledPlayers(ctx context.Context) ([]string, error) {
	var resp TitledPlayersResponse
	err := c.get(ctx, "Failed to fetch grandmasters", &resp, "titled", titleGrandmaster)
	if err != nil {
		return nil, err
	}

	return resp.Players, nil
}

// GetPlayerDetails The username is forwarded as-is, any API-side rejection surfaces as an error
func (c *Client) GetPlayerDetails(ctx context.Context, username string) (player.Detail, error) {
	var detail player.Detail
	err := c.get(ctx, fmt.Sprintf("Failed to fetch details for %s", username), &detail, "player", username)
	if err != nil {
		return player.Detail{}, err
	}

	return detail, nil
}

// GetCountryDetails Accepts either a bare country code or a country resource URL (as referenced by player profiles)
func (c *Client) GetCountryDetails(ctx context.Context, countryRef string) (player.Country, error) {
	var country player.Country
	err := c.get(ctx, fmt.Sprintf("Failed to fetch country details for %s", countryRef), &country, "country", CountryCode(countryRef))
	if err != nil {
		return player.Country{}, err
	}

	return country, nil
}

// CountryCode Extract the code from a reference such as https://api.chess.com/pub/country/NO.
// References without a country segment are returned unchanged.
func CountryCode(ref string) string {
	_, after, found := strings.Cut(ref, countrySegment)
	if !found {
		return ref
	}

	code, _, _ := strings.Cut(after, "/")
	return code
}

func (c *Client) get(ctx context.Context, failure string, v any, elem ...string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u = u.JoinPath(elem...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	body, err := c.do(req, failure)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, v)
}

func (c *Client) do(req *http.Request, failure string) ([]byte, error) {
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if !isSuccessStatusCode(res.StatusCode) {
		return nil, newFetchError(failure, req.URL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func isSuccessStatusCode(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode <= http.StatusIMUsed
}
