// Package config provides the configuration loader for plansync.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers plansync.yaml starting at cwd and walking upward, parses
// it and resolves defaults. A missing file yields the default configuration
// rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := Defaults()
	cfg.StorePath = filepath.Join(cwd, domain.DefaultStorePath())

	configPath, found := l.findConfiguration(cwd)
	if !found {
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("config version %q is not recognized, proceeding with best effort", file.Version))
	}

	if err := applyFile(cfg, &file, filepath.Dir(configPath)); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "config", configPath)
	}

	return cfg, nil
}

// Defaults returns the configuration used when no file is present.
func Defaults() *domain.Config {
	return &domain.Config{
		AthleteID:           "default",
		CurrentTrainingWeek: 1,
		TotalWeeks:          1,
		StorePath:           domain.DefaultStorePath(),
		WatchStore:          true,
		Service: domain.ServiceConfig{
			Timeout: domain.DefaultServiceTimeout,
		},
		TTL: domain.TTLConfig{
			TrainingPlan:  domain.DefaultPlanTTL,
			WeeklySummary: domain.DefaultSummaryTTL,
			Workouts:      domain.DefaultWorkoutsTTL,
			Targets:       domain.DefaultTargetsTTL,
		},
	}
}

// findConfiguration walks from cwd toward the filesystem root looking for
// plansync.yaml. The nearest file wins.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// applyFile overlays the parsed file onto the defaults. Relative store
// paths are resolved against the config file's directory.
func applyFile(cfg *domain.Config, file *File, baseDir string) error {
	if file.Athlete != "" {
		cfg.AthleteID = file.Athlete
	}
	if file.Plan.CurrentWeek != 0 {
		cfg.CurrentTrainingWeek = file.Plan.CurrentWeek
	}
	if file.Plan.TotalWeeks != 0 {
		cfg.TotalWeeks = file.Plan.TotalWeeks
	}
	if file.Service.BaseURL != "" {
		cfg.Service.BaseURL = file.Service.BaseURL
	}
	if file.Store.Path != "" {
		cfg.StorePath = file.Store.Path
		if !filepath.IsAbs(cfg.StorePath) {
			cfg.StorePath = filepath.Join(baseDir, cfg.StorePath)
		}
	} else {
		cfg.StorePath = filepath.Join(baseDir, domain.DefaultStorePath())
	}
	if file.Store.Watch != nil {
		cfg.WatchStore = *file.Store.Watch
	}
	cfg.JSONLogs = file.Log.JSON

	if err := applyDuration(&cfg.Service.Timeout, file.Service.Timeout); err != nil {
		return err
	}

	for _, d := range []struct {
		dst *time.Duration
		raw string
	}{
		{&cfg.TTL.TrainingPlan, file.TTL.TrainingPlan},
		{&cfg.TTL.WeeklySummary, file.TTL.WeeklySummary},
		{&cfg.TTL.Workouts, file.TTL.Workouts},
		{&cfg.TTL.Targets, file.TTL.Targets},
	} {
		if err := applyDuration(d.dst, d.raw); err != nil {
			return err
		}
	}

	return nil
}

// applyDuration parses raw into dst when raw is non-empty.
func applyDuration(dst *time.Duration, raw string) error {
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	*dst = parsed
	return nil
}

// validate rejects configurations the sync engine cannot operate on.
func validate(cfg *domain.Config) error {
	if cfg.CurrentTrainingWeek < 1 {
		return zerr.With(domain.ErrInvalidWeek, "currentWeek", cfg.CurrentTrainingWeek)
	}
	if cfg.TotalWeeks < cfg.CurrentTrainingWeek {
		return zerr.With(domain.ErrInvalidWeek, "totalWeeks", cfg.TotalWeeks)
	}

	for _, ttl := range []time.Duration{
		cfg.TTL.TrainingPlan, cfg.TTL.WeeklySummary, cfg.TTL.Workouts, cfg.TTL.Targets,
	} {
		if ttl <= 0 {
			return zerr.With(domain.ErrConfigParseFailed, "reason", "ttl must be positive")
		}
	}

	return nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is resolved by the upward discovery walk
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
