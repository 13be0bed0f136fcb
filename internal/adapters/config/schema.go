package config

// File represents the structure of the plansync.yaml configuration file.
// Every field is optional; absent values fall back to defaults.
type File struct {
	Version string     `yaml:"version"`
	Athlete string     `yaml:"athlete"`
	Plan    PlanDTO    `yaml:"plan"`
	Service ServiceDTO `yaml:"service"`
	Store   StoreDTO   `yaml:"store"`
	TTL     TTLDTO     `yaml:"cache_ttl"`
	Log     LogDTO     `yaml:"log"`
}

// PlanDTO configures the training plan position.
type PlanDTO struct {
	CurrentWeek int `yaml:"currentWeek"`
	TotalWeeks  int `yaml:"totalWeeks"`
}

// ServiceDTO configures the plan service connection.
type ServiceDTO struct {
	BaseURL string `yaml:"baseUrl"`
	Timeout string `yaml:"timeout"`
}

// StoreDTO configures the on-disk key-value store.
type StoreDTO struct {
	Path  string `yaml:"path"`
	Watch *bool  `yaml:"watch"`
}

// TTLDTO configures per-cache freshness windows as duration strings.
type TTLDTO struct {
	TrainingPlan  string `yaml:"trainingPlan"`
	WeeklySummary string `yaml:"weeklySummary"`
	Workouts      string `yaml:"workouts"`
	Targets       string `yaml:"targets"`
}

// LogDTO configures logging output.
type LogDTO struct {
	JSON bool `yaml:"json"`
}
