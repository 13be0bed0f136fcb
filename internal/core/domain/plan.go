package domain

import "fmt"

// WeeklyPlan is one generated week of training. It is a value object: the
// cache that produced it owns the canonical copy and callers treat it as
// read-only.
type WeeklyPlan struct {
	// PlanID is the composite identifier the plan service addresses plans by.
	PlanID string `json:"plan_id"`
	// WeekNumber is the training week this plan covers, starting at 1.
	WeekNumber int `json:"week_number"`
	// TotalWeeks is the length of the training cycle the plan belongs to.
	TotalWeeks int `json:"total_weeks"`
	// StartDay is the first day of the week as days since the Unix epoch.
	StartDay int64 `json:"start_day"`
	// Workouts are the planned sessions for the week.
	Workouts []PlannedWorkout `json:"workouts"`
}

// PlannedWorkout is a single planned session within a weekly plan.
type PlannedWorkout struct {
	// Day is the scheduled day as days since the Unix epoch. Planned sessions
	// are keyed by integral epoch days, never by wall-clock date values.
	Day int64 `json:"day"`
	// Title is the session title shown to the athlete.
	Title string `json:"title"`
	// Sport is the activity type (run, bike, swim, strength).
	Sport string `json:"sport"`
	// DurationMinutes is the planned duration.
	DurationMinutes int `json:"duration_minutes"`
	// TargetPaceSecPerKm is the target pace in seconds per kilometer,
	// zero when the session has no pace target.
	TargetPaceSecPerKm int `json:"target_pace_sec_per_km,omitempty"`
}

// PlanID builds the composite plan identifier for an athlete and week.
func PlanID(athleteID string, week int) string {
	return fmt.Sprintf("%s-week-%d", athleteID, week)
}

// WeeklySummary aggregates completed training load for one week.
type WeeklySummary struct {
	// WeekNumber is the training week the summary covers.
	WeekNumber int `json:"week_number"`
	// TotalDurationMinutes is the sum of completed session durations.
	TotalDurationMinutes int `json:"total_duration_minutes"`
	// TotalDistanceMeters is the sum of completed session distances.
	TotalDistanceMeters int `json:"total_distance_meters"`
	// CompletedWorkouts is the number of completed sessions.
	CompletedWorkouts int `json:"completed_workouts"`
}

// WorkoutRecord is one recorded activity imported from a health platform.
type WorkoutRecord struct {
	// ID is the upstream identifier of the activity.
	ID string `json:"id"`
	// Day is the activity day as days since the Unix epoch.
	Day int64 `json:"day"`
	// Sport is the activity type.
	Sport string `json:"sport"`
	// DurationMinutes is the recorded duration.
	DurationMinutes int `json:"duration_minutes"`
	// DistanceMeters is the recorded distance.
	DistanceMeters int `json:"distance_meters"`
}

// TrainingTargets holds the derived pace and load targets for the athlete.
type TrainingTargets struct {
	// VDOT is the current fitness estimate.
	VDOT float64 `json:"vdot"`
	// EasyPaceSecPerKm is the recommended easy pace.
	EasyPaceSecPerKm int `json:"easy_pace_sec_per_km"`
	// ThresholdPaceSecPerKm is the recommended threshold pace.
	ThresholdPaceSecPerKm int `json:"threshold_pace_sec_per_km"`
	// WeeklyLoadMinutes is the recommended weekly training volume.
	WeeklyLoadMinutes int `json:"weekly_load_minutes"`
}
