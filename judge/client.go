package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a stateless wrapper around the remote judge HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateBatch enqueues one execution per item and returns one token per
// item in the same order. A missing token in the response yields "", a
// response with a different number of entries is ErrTokenCountMismatch.
func (c *Client) CreateBatch(ctx context.Context, items []BatchItem) ([]string, error) {
	reqBody, err := json.Marshal(struct {
		Submissions []BatchItem `json:"submissions"`
	}{Submissions: items})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch: %w", err)
	}

	endpoint := c.baseURL + "/submissions/batch?base64_encoded=true"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, statusCode, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusCreated {
		return nil, &UpstreamError{StatusCode: statusCode, Body: body}
	}

	var created []struct {
		Token *string `json:"token"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to decode batch response: %w", err)
	}
	if len(created) != len(items) {
		return nil, fmt.Errorf("%w: %d tokens for %d items", ErrTokenCountMismatch, len(created), len(items))
	}

	tokens := make([]string, len(created))
	for i, c := range created {
		if c.Token != nil {
			tokens[i] = *c.Token
		}
	}
	return tokens, nil
}

// PollBatch returns the status, time and memory of every token, in token order.
func (c *Client) PollBatch(ctx context.Context, tokens []string) ([]Status, error) {
	query := url.Values{}
	query.Set("tokens", strings.Join(tokens, ","))
	query.Set("fields", "status_id,time,memory")
	endpoint := c.baseURL + "/submissions/batch?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll request: %w", err)
	}

	body, statusCode, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: statusCode, Body: body}
	}

	var polled struct {
		Submissions []*statusJson `json:"submissions"`
	}
	if err := json.Unmarshal(body, &polled); err != nil {
		return nil, fmt.Errorf("failed to decode poll response: %w", err)
	}

	res := make([]Status, len(polled.Submissions))
	for i, s := range polled.Submissions {
		if s == nil {
			continue // unknown token, reported as unfinished
		}
		res[i] = Status{ID: s.StatusID, Time: float64(s.Time)}
		if s.Memory != nil {
			res[i].Memory = *s.Memory
		}
	}
	return res, nil
}

// About is used as a liveness probe.
func (c *Client) About(ctx context.Context) (*About, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/about", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create about request: %w", err)
	}

	body, statusCode, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: statusCode, Body: body}
	}

	about := &About{}
	if err := json.Unmarshal(body, about); err != nil {
		return nil, fmt.Errorf("failed to decode about response: %w", err)
	}
	return about, nil
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("judge request %s %s failed: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read judge response: %w", err)
	}
	return body, resp.StatusCode, nil
}
