// Package upstream talks to the fraud service's REST endpoints.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"trustdesk/internal/domain"
)

var ErrSubmit = errors.New("decision submission failed")

// DecisionClient posts reviewer decisions to the validate endpoint. It applies
// no timeout of its own and never retries.
type DecisionClient struct {
	baseURL string
	http    *http.Client
}

func NewDecisionClient(baseURL string, hc *http.Client) *DecisionClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &DecisionClient{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Submit sends the decision as query parameters with an empty body. Only the
// HTTP status is observed; the response body is discarded.
func (c *DecisionClient) Submit(ctx context.Context, d domain.Decision) error {
	q := url.Values{}
	q.Set("transaction_id", d.TransactionID)
	q.Set("decision", string(d.Status))
	q.Set("notes", d.Notes)
	endpoint := c.baseURL + "/api/admin/validate?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmit, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmit, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: upstream answered %s", ErrSubmit, resp.Status)
	}
	return nil
}
