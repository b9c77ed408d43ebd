package util

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const userAgent = "jobcorpus/1.0 (+local)"

// Client is the shared rate-limited HTTP client for all sources. Every request
// goes through the per-host limiter first, so one slow API cannot starve the
// others and no host sees bursts.
type Client struct {
	hc      *http.Client
	limiter *HostLimiter
}

func NewClient(reqPerSec float64, burst int) *Client {
	return &Client{
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: NewHostLimiter(reqPerSec, burst),
	}
}

// GetJSON fetches url and decodes the body into v. hdr may be nil.
func (c *Client) GetJSON(ctx context.Context, url string, hdr http.Header, v any) error {
	if err := c.limiter.WaitURL(ctx, url); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	for k, vals := range hdr {
		for _, val := range vals {
			req.Header.Add(k, val)
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return fmt.Errorf("get %s: status %d", url, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}
