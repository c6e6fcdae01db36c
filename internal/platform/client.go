// Package platform talks to the external automation platform. The service
// builds payloads out of parsed durations and ISO instants; the platform owns
// the actual enable/disable transitions.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"automation_snooze/internal/models"
)

// Client performs snooze service calls and fetches the automation snapshot.
type Client interface {
	Pause(ctx context.Context, entityIDs []string, d models.ParsedDuration) error
	PauseSchedule(ctx context.Context, entityIDs []string, resumeAt, disableAt string) error
	PauseByArea(ctx context.Context, areaID string, d models.ParsedDuration) error
	PauseByLabel(ctx context.Context, labelID string, d models.ParsedDuration) error
	Adjust(ctx context.Context, entityID string, d models.ParsedDuration) error
	Cancel(ctx context.Context, entityID string) error
	CancelAll(ctx context.Context) error
	CancelScheduled(ctx context.Context, entityID string) error
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

const defaultTimeout = 10 * time.Second

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// Service-call payloads. Duration-mode calls carry the split day/hour/minute
// fields; schedule-mode calls carry ISO instants with explicit offsets.
type durationCall struct {
	EntityID any    `json:"entity_id,omitempty"`
	AreaID   string `json:"area_id,omitempty"`
	LabelID  string `json:"label_id,omitempty"`
	Days     int    `json:"days"`
	Hours    int    `json:"hours"`
	Minutes  int    `json:"minutes"`
}

type scheduleCall struct {
	EntityID  any    `json:"entity_id"`
	ResumeAt  string `json:"resume_at"`
	DisableAt string `json:"disable_at,omitempty"`
}

type entityCall struct {
	EntityID string `json:"entity_id,omitempty"`
}

func (c *HTTPClient) Pause(ctx context.Context, entityIDs []string, d models.ParsedDuration) error {
	return c.call(ctx, "pause", durationCall{EntityID: entityArg(entityIDs), Days: d.Days, Hours: d.Hours, Minutes: d.Minutes})
}

func (c *HTTPClient) PauseSchedule(ctx context.Context, entityIDs []string, resumeAt, disableAt string) error {
	return c.call(ctx, "pause", scheduleCall{EntityID: entityArg(entityIDs), ResumeAt: resumeAt, DisableAt: disableAt})
}

func (c *HTTPClient) PauseByArea(ctx context.Context, areaID string, d models.ParsedDuration) error {
	return c.call(ctx, "pause_by_area", durationCall{AreaID: areaID, Days: d.Days, Hours: d.Hours, Minutes: d.Minutes})
}

func (c *HTTPClient) PauseByLabel(ctx context.Context, labelID string, d models.ParsedDuration) error {
	return c.call(ctx, "pause_by_label", durationCall{LabelID: labelID, Days: d.Days, Hours: d.Hours, Minutes: d.Minutes})
}

func (c *HTTPClient) Adjust(ctx context.Context, entityID string, d models.ParsedDuration) error {
	return c.call(ctx, "adjust", durationCall{EntityID: entityID, Days: d.Days, Hours: d.Hours, Minutes: d.Minutes})
}

func (c *HTTPClient) Cancel(ctx context.Context, entityID string) error {
	return c.call(ctx, "cancel", entityCall{EntityID: entityID})
}

func (c *HTTPClient) CancelAll(ctx context.Context) error {
	return c.call(ctx, "cancel_all", entityCall{})
}

func (c *HTTPClient) CancelScheduled(ctx context.Context, entityID string) error {
	return c.call(ctx, "cancel_scheduled", entityCall{EntityID: entityID})
}

// Snapshot fetches the automation list plus label/category name maps.
func (c *HTTPClient) Snapshot(ctx context.Context) (models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/snooze/snapshot", nil)
	if err != nil {
		return models.Snapshot{}, err
	}
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("fetch snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return models.Snapshot{}, fmt.Errorf("fetch snapshot: unexpected status %d", resp.StatusCode)
	}
	var snap models.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (c *HTTPClient) call(ctx context.Context, service string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := c.baseURL + "/api/services/snooze/" + service
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", service, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("call %s: unexpected status %d", service, resp.StatusCode)
	}
	return nil
}

func (c *HTTPClient) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// entityArg keeps the wire format compact: a single id goes out as a string,
// several as an array.
func entityArg(ids []string) any {
	if len(ids) == 1 {
		return ids[0]
	}
	return ids
}
