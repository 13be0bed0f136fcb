// Package planapi implements the plan service port over HTTP.
package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxErrorBodyBytes bounds how much of an error response is read for
// diagnostics.
const maxErrorBodyBytes = 4 << 10

// Client implements ports.PlanService against the plan service's JSON API.
//
// Endpoints:
//
//	GET  /v1/plans/{planID}   fetch one weekly plan
//	POST /v1/plans            request generation for a target week
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. A zero timeout falls
// back to the default service timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = domain.DefaultServiceTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchPlan retrieves the weekly plan with the given composite id. A 404
// from the service means the plan has not been generated yet and is
// reported as domain.ErrPlanNotFound.
func (c *Client) FetchPlan(ctx context.Context, planID string) (*domain.WeeklyPlan, error) {
	endpoint := c.baseURL + "/v1/plans/" + url.PathEscape(planID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrServiceUnavailable.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServiceUnavailable.Error()), "plan_id", planID)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, zerr.With(domain.ErrPlanNotFound, "plan_id", planID)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, c.statusError(resp, domain.ErrServiceUnavailable, planID)
	}

	var plan domain.WeeklyPlan
	if err := json.NewDecoder(resp.Body).Decode(&plan); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPlanDecodeFailed.Error()), "plan_id", planID)
	}

	return &plan, nil
}

// createPlanRequest is the generation request body.
type createPlanRequest struct {
	TargetWeek int `json:"target_week"`
}

// CreatePlan asks the service to generate the plan for the target week. The
// created plan is not returned; callers fetch it by its composite id.
func (c *Client) CreatePlan(ctx context.Context, targetWeek int) error {
	body, err := json.Marshal(createPlanRequest{TargetWeek: targetWeek})
	if err != nil {
		return zerr.Wrap(err, domain.ErrPlanCreateFailed.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/plans", bytes.NewReader(body))
	if err != nil {
		return zerr.Wrap(err, domain.ErrPlanCreateFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServiceUnavailable.Error()), "target_week", targetWeek)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp, domain.ErrPlanCreateFailed, fmt.Sprintf("week-%d", targetWeek))
	}

	return nil
}

// statusError builds the error for a non-2xx response, keeping a bounded
// excerpt of the body for diagnostics.
func (c *Client) statusError(resp *http.Response, sentinel error, subject string) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	err := zerr.With(sentinel, "status", resp.StatusCode)
	err = zerr.With(err, "subject", subject)
	if len(excerpt) > 0 {
		err = zerr.With(err, "body", string(excerpt))
	}
	return err
}
