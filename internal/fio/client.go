package fio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public FIO REST endpoint.
const DefaultBaseURL = "https://rest.fnar.net"

// SnapshotStore is a persistent cache for raw endpoint payloads, so the map can
// render a last-known-good data set before a fresh fetch completes.
type SnapshotStore interface {
	SaveSnapshot(endpoint string, payload []byte) error
	LoadSnapshot(endpoint string) (payload []byte, fetchedAt time.Time, ok bool)
}

// Client is a rate-limited FIO HTTP client.
type Client struct {
	baseURL   string
	http      *http.Client
	sem       chan struct{}
	group     singleflight.Group
	snapshots SnapshotStore // optional
}

// NewClient creates a FIO client with rate limiting and the given snapshot store.
// store may be nil (no persistence).
func NewClient(baseURL string, store SnapshotStore) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		sem:       make(chan struct{}, 8),
		snapshots: store,
	}
}

func (c *Client) newRequest(method, path, authToken string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "prunmap/1.0 (github.com)")
	req.Header.Set("Accept", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}
	return req, nil
}

// getRaw fetches a path and returns the response body.
// An auth token is attached when non-empty.
func (c *Client) getRaw(path, authToken string) ([]byte, error) {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	req, err := c.newRequest("GET", path, authToken, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("FIO %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}

// GetJSON fetches a public path and decodes JSON into dst.
func (c *Client) GetJSON(path string, dst interface{}) error {
	return c.GetJSONAuth(path, "", dst)
}

// GetJSONAuth fetches a path with an auth token and decodes JSON into dst.
func (c *Client) GetJSONAuth(path, authToken string, dst interface{}) error {
	body, err := c.getRaw(path, authToken)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// PostJSON posts a JSON body and decodes the JSON response into dst.
func (c *Client) PostJSON(path string, payload, dst interface{}) error {
	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	buf, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := c.newRequest("POST", path, "", bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("FIO %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// fetchSnapshotted fetches a public endpoint, persisting the raw payload on
// success. Concurrent calls for the same endpoint are coalesced via
// singleflight so a toggle storm can't stack duplicate downloads.
func (c *Client) fetchSnapshotted(path string) ([]byte, error) {
	v, err, _ := c.group.Do(path, func() (interface{}, error) {
		body, err := c.getRaw(path, "")
		if err != nil {
			return nil, err
		}
		if c.snapshots != nil {
			c.snapshots.SaveSnapshot(path, body)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
