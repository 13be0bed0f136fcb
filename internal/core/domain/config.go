package domain

import "time"

// Default cache TTLs. Each cache carries its own freshness window tuned to
// how often the underlying data changes.
const (
	DefaultPlanTTL     = 30 * time.Minute
	DefaultSummaryTTL  = 15 * time.Minute
	DefaultWorkoutsTTL = 10 * time.Minute
	DefaultTargetsTTL  = time.Hour
)

// DefaultServiceTimeout bounds a single plan service request.
const DefaultServiceTimeout = 10 * time.Second

// TTLConfig holds the per-cache freshness windows.
type TTLConfig struct {
	TrainingPlan  time.Duration
	WeeklySummary time.Duration
	Workouts      time.Duration
	Targets       time.Duration
}

// ServiceConfig holds the plan service connection settings.
type ServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Config is the resolved application configuration. All fields carry their
// defaults when the configuration file is absent or partial.
type Config struct {
	AthleteID           string
	CurrentTrainingWeek int
	TotalWeeks          int
	StorePath           string
	WatchStore          bool
	JSONLogs            bool
	Service             ServiceConfig
	TTL                 TTLConfig
}
