package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
)

// DefaultRemoteTimeout bounds a single remote call.
const DefaultRemoteTimeout = 10 * time.Second

// Remote delegates simulations to another cpu-sched-sim HTTP server.
type Remote struct {
	baseURL    string
	httpClient *http.Client
}

// NewRemote creates a Remote client for the server at baseURL
// (e.g. "http://localhost:8080"). A zero timeout uses DefaultRemoteTimeout.
func NewRemote(baseURL string, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Remote{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (r *Remote) Name() string { return NameRemote }

// Available checks GET /api/v1/health.
func (r *Remote) Available(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: health: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health: HTTP %d", ErrBackendUnavailable, resp.StatusCode)
	}
	return nil
}

// Simulate POSTs the request to /api/v1/simulate.
func (r *Remote) Simulate(ctx context.Context, simReq Request) (*sim.Result, error) {
	body, err := json.Marshal(simReq)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/v1/simulate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: simulate: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("%w: simulate: HTTP %d: %s", ErrBackendUnavailable, resp.StatusCode, apiErr.Error)
		}
		return nil, fmt.Errorf("%w: simulate: HTTP %d: %s", ErrBackendUnavailable, resp.StatusCode, data)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decoding simulate response: %v", ErrBackendUnavailable, err)
	}
	if out.Result == nil {
		return nil, fmt.Errorf("%w: simulate response has no result", ErrBackendUnavailable)
	}
	return out.Result, nil
}
