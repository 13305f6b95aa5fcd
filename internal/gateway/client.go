// Package gateway performs the asynchronous request kinds against the remote
// triage service. Every operation resolves or fails; failures are returned to
// the caller, never thrown into a render path. No retries are performed and
// no client-side timeout is enforced; a hung call simply never resolves.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"triageboard/internal/models"
)

// APIError is an application-level failure: a well-formed response carrying
// success=false. The message, when present, is server-provided and suitable
// for operator display.
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s failed", e.Op)
}

// Client talks JSON over HTTP to the remote scoring/simulation service.
type Client struct {
	base string
	http *http.Client
}

// NewClient creates a client rooted at the given API base URL, e.g.
// "http://localhost:8000/api".
func NewClient(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// Stats fetches the aggregate queue snapshot.
func (c *Client) Stats(ctx context.Context) (models.StatsSnapshot, error) {
	var snap models.StatsSnapshot
	err := c.getJSON(ctx, "/stats", &snap)
	return snap, err
}

// Queue fetches the ordered patient queue.
func (c *Client) Queue(ctx context.Context) ([]models.ScoredPatient, error) {
	var payload struct {
		Patients []models.ScoredPatient `json:"patients"`
	}
	if err := c.getJSON(ctx, "/patients", &payload); err != nil {
		return nil, err
	}
	return payload.Patients, nil
}

// SubmitRecord sends one vital record for scoring and returns the prediction.
// A success=false response becomes an *APIError carrying the server message.
func (c *Client) SubmitRecord(ctx context.Context, rec models.VitalRecord) (models.Prediction, error) {
	var raw struct {
		Success       bool        `json:"success"`
		PatientID     json.Number `json:"patient_id"`
		PriorityLabel string      `json:"priority_label"`
		Confidence    *float64    `json:"confidence"`
		Message       string      `json:"message"`
	}
	if err := c.postJSON(ctx, "/add_patient", rec, &raw); err != nil {
		return models.Prediction{}, err
	}
	if !raw.Success {
		return models.Prediction{}, &APIError{Op: "add_patient", Message: raw.Message}
	}
	// The service omits confidence on some scoring paths; 0.8 mirrors its own
	// fallback value.
	confidence := 0.8
	if raw.Confidence != nil {
		confidence = *raw.Confidence
	}
	return models.Prediction{
		PatientID:     raw.PatientID,
		PriorityLabel: raw.PriorityLabel,
		Confidence:    confidence,
		Message:       raw.Message,
	}, nil
}

// RunSimulation executes one queueing-discipline run and returns its metrics.
func (c *Client) RunSimulation(ctx context.Context, algorithm string) (models.SimulationRun, error) {
	var raw struct {
		Success bool                 `json:"success"`
		Result  models.SimulationRun `json:"result"`
		Message string               `json:"message"`
	}
	body := map[string]string{"algorithm": algorithm}
	if err := c.postJSON(ctx, "/run_simulation", body, &raw); err != nil {
		return models.SimulationRun{}, err
	}
	if !raw.Success {
		return models.SimulationRun{}, &APIError{Op: "run_simulation", Message: raw.Message}
	}
	return raw.Result, nil
}

// SimulationHistory fetches the latest run per algorithm.
func (c *Client) SimulationHistory(ctx context.Context) (map[string]models.SimulationRun, error) {
	history := make(map[string]models.SimulationRun)
	if err := c.getJSON(ctx, "/simulation_results", &history); err != nil {
		return nil, err
	}
	return history, nil
}

// ClearData wipes all patient and simulation state on the remote service.
func (c *Client) ClearData(ctx context.Context) error {
	var raw struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/clear_data", struct{}{}, &raw); err != nil {
		return err
	}
	if !raw.Success {
		return &APIError{Op: "clear_data", Message: raw.Message}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("gateway: %s %s returned status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway: decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
