package planapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/internal/adapters/planapi"
	"go.trai.ch/plansync/internal/core/domain"
)

func TestClient_FetchPlan(t *testing.T) {
	want := domain.WeeklyPlan{
		PlanID:     "athlete-1-week-3",
		WeekNumber: 3,
		TotalWeeks: 12,
		StartDay:   20300,
		Workouts: []domain.PlannedWorkout{
			{Day: 20300, Title: "Easy run", Sport: "run", DurationMinutes: 45},
			{Day: 20302, Title: "Threshold", Sport: "run", DurationMinutes: 60, TargetPaceSecPerKm: 255},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/plans/athlete-1-week-3", r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	got, err := client.FetchPlan(context.Background(), "athlete-1-week-3")
	require.NoError(t, err)
	assert.Equal(t, &want, got)
}

func TestClient_FetchPlan_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no plan", http.StatusNotFound)
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	_, err := client.FetchPlan(context.Background(), "athlete-1-week-9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPlanNotFound))
}

func TestClient_FetchPlan_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	_, err := client.FetchPlan(context.Background(), "athlete-1-week-3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrServiceUnavailable))
	assert.NotErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestClient_FetchPlan_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	_, err := client.FetchPlan(context.Background(), "athlete-1-week-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrPlanDecodeFailed.Error())
}

func TestClient_FetchPlan_ConnectionRefused(t *testing.T) {
	// Point at a server that is already closed.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	_, err := client.FetchPlan(context.Background(), "athlete-1-week-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrServiceUnavailable.Error())
}

func TestClient_FetchPlan_ContextCanceled(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	client := planapi.NewClient(srv.URL, 5*time.Second)
	_, err := client.FetchPlan(ctx, "athlete-1-week-3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestClient_CreatePlan(t *testing.T) {
	var gotBody struct {
		TargetWeek int `json:"target_week"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/plans", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	require.NoError(t, client.CreatePlan(context.Background(), 4))
	assert.Equal(t, 4, gotBody.TargetWeek)
}

func TestClient_CreatePlan_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "generation failed", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := planapi.NewClient(srv.URL, time.Second)
	err := client.CreatePlan(context.Background(), 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPlanCreateFailed))
}
