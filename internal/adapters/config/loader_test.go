package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/internal/adapters/config"
	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.AthleteID)
	assert.Equal(t, 1, cfg.CurrentTrainingWeek)
	assert.Equal(t, 1, cfg.TotalWeeks)
	assert.Equal(t, filepath.Join(dir, domain.DefaultStorePath()), cfg.StorePath)
	assert.True(t, cfg.WatchStore)
	assert.Equal(t, domain.DefaultPlanTTL, cfg.TTL.TrainingPlan)
	assert.Equal(t, domain.DefaultSummaryTTL, cfg.TTL.WeeklySummary)
	assert.Equal(t, domain.DefaultWorkoutsTTL, cfg.TTL.Workouts)
	assert.Equal(t, domain.DefaultTargetsTTL, cfg.TTL.Targets)
	assert.Equal(t, domain.DefaultServiceTimeout, cfg.Service.Timeout)
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, `
version: "1"
athlete: runner-42
plan:
  currentWeek: 3
  totalWeeks: 12
service:
  baseUrl: https://plans.example.com
  timeout: 5s
store:
  path: data/store
  watch: false
cache_ttl:
  trainingPlan: 45m
  weeklySummary: 20m
  workouts: 5m
  targets: 2h
log:
  json: true
`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "runner-42", cfg.AthleteID)
	assert.Equal(t, 3, cfg.CurrentTrainingWeek)
	assert.Equal(t, 12, cfg.TotalWeeks)
	assert.Equal(t, "https://plans.example.com", cfg.Service.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Service.Timeout)
	assert.Equal(t, filepath.Join(dir, "data", "store"), cfg.StorePath)
	assert.False(t, cfg.WatchStore)
	assert.Equal(t, 45*time.Minute, cfg.TTL.TrainingPlan)
	assert.Equal(t, 20*time.Minute, cfg.TTL.WeeklySummary)
	assert.Equal(t, 5*time.Minute, cfg.TTL.Workouts)
	assert.Equal(t, 2*time.Hour, cfg.TTL.Targets)
	assert.True(t, cfg.JSONLogs)
}

func TestLoader_Load_UpwardDiscovery(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()

	createFile(t, rootDir, domain.ConfigFileName, `
athlete: nested-athlete
plan:
  currentWeek: 2
  totalWeeks: 8
`)

	nested := filepath.Join(rootDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "nested-athlete", cfg.AthleteID)
	// Store path resolves against the config file's directory, not cwd.
	assert.Equal(t, filepath.Join(rootDir, domain.DefaultStorePath()), cfg.StorePath)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()

	createFile(t, rootDir, domain.ConfigFileName, "athlete: outer\n")

	nested := filepath.Join(rootDir, "inner")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	createFile(t, nested, domain.ConfigFileName, "athlete: inner\n")

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, "inner", cfg.AthleteID)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, "athlete: [unclosed\n")

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_InvalidDuration(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, `
cache_ttl:
  workouts: "soon"
`)

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_InvalidWeeks(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "current week below one",
			content: `
plan:
  currentWeek: -1
  totalWeeks: 4
`,
		},
		{
			name: "total weeks behind current",
			content: `
plan:
  currentWeek: 6
  totalWeeks: 4
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newTestLoader(t)
			dir := t.TempDir()
			createFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := loader.Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), domain.ErrInvalidWeek.Error())
		})
	}
}

func TestLoader_Load_AbsoluteStorePath(t *testing.T) {
	loader := newTestLoader(t)
	dir := t.TempDir()
	storeDir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, "store:\n  path: "+storeDir+"\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, storeDir, cfg.StorePath)
}
