package pinata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ipverse/ipv-cli/internal/core/ports"
)

// Publisher pins JSON documents to IPFS through the Pinata pinning API
type Publisher struct {
	baseURL    string
	jwt        string
	httpClient *http.Client
}

// NewPublisher creates a Pinata-backed publisher. The JWT is sent as a
// bearer credential on every pin request.
func NewPublisher(baseURL, jwt string, timeout time.Duration) *Publisher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Publisher{
		baseURL: strings.TrimRight(baseURL, "/"),
		jwt:     jwt,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Ensure it implements the interface
var _ ports.Publisher = (*Publisher)(nil)

type pinRequest struct {
	PinataContent  any         `json:"pinataContent"`
	PinataMetadata pinMetadata `json:"pinataMetadata"`
	PinataOptions  pinOptions  `json:"pinataOptions"`
}

type pinMetadata struct {
	Name      string            `json:"name"`
	Keyvalues map[string]string `json:"keyvalues,omitempty"`
}

type pinOptions struct {
	CIDVersion int `json:"cidVersion"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int    `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
	Error     string `json:"error"`
}

// PinJSON publishes a document and returns its content address.
// The pinning API has no network parameter, so visibility is recorded as a
// searchable keyvalue alongside the caller's own.
func (p *Publisher) PinJSON(ctx context.Context, doc any, visibility string, opts ports.PinOptions) (string, error) {
	keyvalues := make(map[string]string, len(opts.Keyvalues)+1)
	for k, v := range opts.Keyvalues {
		keyvalues[k] = v
	}
	if visibility != "" {
		keyvalues["visibility"] = visibility
	}

	body := pinRequest{
		PinataContent: doc,
		PinataMetadata: pinMetadata{
			Name:      opts.Name,
			Keyvalues: keyvalues,
		},
		PinataOptions: pinOptions{CIDVersion: 1},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode pin request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/pinning/pinJSONToIPFS", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build pin request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.jwt)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("pin request failed: %w", err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read pin response: %w", err)
	}

	var pinned pinResponse
	if err := json.Unmarshal(respData, &pinned); err != nil {
		return "", fmt.Errorf("failed to decode pin response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if pinned.Error != "" {
			return "", fmt.Errorf("pin rejected: %s", pinned.Error)
		}
		return "", fmt.Errorf("pin request failed with status %d", resp.StatusCode)
	}
	if pinned.IpfsHash == "" {
		return "", fmt.Errorf("pin response missing content address")
	}

	return pinned.IpfsHash, nil
}
