package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	fetchTimeout = 10 * time.Second

	// Registration portals reject unknown clients
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// Exports of a whole faculty stay well below this.
	maxDocumentSize = 32 << 20
)

// Client downloads registration exports that are published online.
type Client struct {
	http *http.Client
}

func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: fetchTimeout}}
}

// get issues a GET for url. Any status other than 200 is an error.
func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bad url %q: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}
	return resp, nil
}

// FetchDocument downloads one export page and returns its body and the
// Content-Type the server declared for it.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", url, err)
	}
	if len(body) > maxDocumentSize {
		return nil, "", fmt.Errorf("%s is larger than %d bytes", url, maxDocumentSize)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
