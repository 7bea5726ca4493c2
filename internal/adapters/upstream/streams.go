package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trustdesk/internal/domain"
)

const (
	StreamVAS = "vas_stream"
	StreamPOS = "pos_stream"
)

// Streams lists the inspection streams polled by default.
var Streams = []string{StreamVAS, StreamPOS}

type streamResponse struct {
	Status string               `json:"status"`
	Data   []domain.StreamEvent `json:"data"`
}

// StreamClient reads the stream inspection API.
type StreamClient struct {
	baseURL string
	http    *http.Client
}

func NewStreamClient(baseURL string, hc *http.Client) *StreamClient {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &StreamClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

func (c *StreamClient) Fetch(ctx context.Context, stream string, count int) ([]domain.StreamEvent, bool, error) {
	endpoint := fmt.Sprintf("%s/api/streams/%s?count=%s", c.baseURL, url.PathEscape(stream), strconv.Itoa(count))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	var out streamResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", stream, err)
	}
	if out.Status != "success" {
		return nil, false, nil
	}
	return out.Data, true, nil
}
