// Package sink provides submission sink implementations for the wizard
// controller: a direct in-process sink over a store, and an HTTP client sink
// posting to a remote submission service.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/onboarding-wizard/internal/payload"
	"github.com/jonathan/onboarding-wizard/internal/store"
	"github.com/jonathan/onboarding-wizard/internal/wizard"
)

// StoreSink records submissions directly into a store.
type StoreSink struct {
	Store store.Store
}

// Submit saves the submission and returns the assigned id.
func (s *StoreSink) Submit(ctx context.Context, sub *payload.Submission) (*wizard.Receipt, error) {
	entry, err := s.Store.Save(ctx, sub.Fields, sub.File)
	if err != nil {
		return nil, err
	}
	return &wizard.Receipt{ID: entry.ID.String()}, nil
}

// HTTPSink posts submissions as multipart/form-data to a submission service.
type HTTPSink struct {
	URL    string
	Client *http.Client
}

type submitResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Submit encodes the submission and posts it. Any non-2xx response is a
// submission failure; the caller may retry.
func (h *HTTPSink) Submit(ctx context.Context, sub *payload.Submission) (*wizard.Receipt, error) {
	body, contentType, err := payload.EncodeMultipart(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to submit form: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var out submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode submit response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("sink rejected submission: %s", out.Error)
		}
		return nil, fmt.Errorf("sink rejected submission: status %d", resp.StatusCode)
	}
	return &wizard.Receipt{ID: out.Data.ID}, nil
}
