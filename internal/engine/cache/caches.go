package cache

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.trai.ch/plansync/internal/core/domain"
	"go.trai.ch/plansync/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	planIndexKey  = "training_plan/index"
	summaryKey    = "weekly_summary/current"
	workoutsKey   = "workouts_v2/recent"
	targetsKey    = "training_targets/current"
	planKeyFormat = "training_plan/week/%d"
)

// PlanCache holds one entry per training week under the training_plan
// identity. Week numbers are the only key dimension; the set of written
// weeks is tracked in a persisted index so Clear covers entries written by
// earlier processes.
type PlanCache struct {
	kv   ports.KeyValueStore
	ttl  time.Duration
	log  ports.Logger
	opts []StoreOption

	mu    sync.Mutex
	weeks map[int]*Store[domain.WeeklyPlan]
}

// NewPlanCache creates the weekly plan cache.
func NewPlanCache(kv ports.KeyValueStore, ttl time.Duration, log ports.Logger, opts ...StoreOption) *PlanCache {
	return &PlanCache{
		kv:    kv,
		ttl:   ttl,
		log:   log,
		opts:  opts,
		weeks: make(map[int]*Store[domain.WeeklyPlan]),
	}
}

// Identity implements ports.ClearableCache.
func (c *PlanCache) Identity() domain.CacheIdentity {
	return domain.CacheTrainingPlan
}

// week returns the entry store for the given week, creating it on demand.
func (c *PlanCache) week(n int) *Store[domain.WeeklyPlan] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.weeks[n]; ok {
		return s
	}
	s := NewStore[domain.WeeklyPlan](
		domain.CacheTrainingPlan,
		fmt.Sprintf(planKeyFormat, n),
		c.ttl,
		c.kv,
		c.log,
		c.opts...,
	)
	c.weeks[n] = s
	return s
}

// Plan returns the cached plan for the week, if present and decodable.
func (c *PlanCache) Plan(week int) (*domain.WeeklyPlan, bool) {
	plan, ok := c.week(week).Read()
	if !ok {
		return nil, false
	}
	return &plan, true
}

// PlanIsExpired reports whether the cached plan for the week is absent or
// older than the cache TTL.
func (c *PlanCache) PlanIsExpired(week int) bool {
	return c.week(week).IsExpired()
}

// WritePlan persists the plan under its week and records the week in the
// index. A failed write leaves the previous entry intact.
func (c *PlanCache) WritePlan(plan *domain.WeeklyPlan) error {
	if err := c.week(plan.WeekNumber).Write(*plan); err != nil {
		return err
	}
	c.addToIndex(plan.WeekNumber)
	return nil
}

// Clear removes all week entries and the index.
func (c *PlanCache) Clear() error {
	var errs error
	for _, week := range c.knownWeeks() {
		if err := c.week(week).Clear(); err != nil {
			errs = zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
		}
	}
	if err := c.kv.Remove(planIndexKey); err != nil {
		errs = zerr.Wrap(err, domain.ErrCacheClearFailed.Error())
	}
	return errs
}

// IsExpired reports whether every stored week has outlived the TTL.
// An empty cache counts as expired. A cache with any fresh week is not
// expired, so the registry's expired sweep never discards fresh plans.
func (c *PlanCache) IsExpired() bool {
	weeks := c.knownWeeks()
	if len(weeks) == 0 {
		return true
	}
	for _, week := range weeks {
		if !c.week(week).IsExpired() {
			return false
		}
	}
	return true
}

// SizeBytes implements ports.ClearableCache.
func (c *PlanCache) SizeBytes() int64 {
	var total int64
	for _, week := range c.knownWeeks() {
		total += c.week(week).SizeBytes()
	}
	return total
}

// knownWeeks merges the persisted index with the weeks touched in-process.
func (c *PlanCache) knownWeeks() []int {
	weeks := c.readIndex()

	c.mu.Lock()
	for week := range c.weeks {
		if !slices.Contains(weeks, week) {
			weeks = append(weeks, week)
		}
	}
	c.mu.Unlock()

	slices.Sort(weeks)
	return weeks
}

func (c *PlanCache) readIndex() []int {
	data, err := c.kv.Get(planIndexKey)
	if err != nil || data == nil {
		return nil
	}
	var weeks []int
	if err := json.Unmarshal(data, &weeks); err != nil {
		// Corrupt index: drop it, week entries are still reachable in-process.
		c.log.Warn(fmt.Sprintf("clearing corrupt plan index: %v", err))
		_ = c.kv.Remove(planIndexKey)
		return nil
	}
	return weeks
}

func (c *PlanCache) addToIndex(week int) {
	weeks := c.readIndex()
	if slices.Contains(weeks, week) {
		return
	}
	weeks = append(weeks, week)
	slices.Sort(weeks)

	data, err := json.Marshal(weeks)
	if err != nil {
		c.log.Error(zerr.Wrap(err, domain.ErrEntryEncodeFailed.Error()))
		return
	}
	if err := c.kv.Set(planIndexKey, data); err != nil {
		c.log.Error(zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", planIndexKey))
	}
}

// SummaryCache caches the aggregated weekly load summary.
type SummaryCache struct {
	*Store[domain.WeeklySummary]
}

// NewSummaryCache creates the weekly summary cache.
func NewSummaryCache(kv ports.KeyValueStore, ttl time.Duration, log ports.Logger, opts ...StoreOption) *SummaryCache {
	return &SummaryCache{
		Store: NewStore[domain.WeeklySummary](domain.CacheWeeklySummary, summaryKey, ttl, kv, log, opts...),
	}
}

// WorkoutsCache caches the recently imported workout records.
type WorkoutsCache struct {
	*Store[[]domain.WorkoutRecord]
}

// NewWorkoutsCache creates the workouts cache.
func NewWorkoutsCache(kv ports.KeyValueStore, ttl time.Duration, log ports.Logger, opts ...StoreOption) *WorkoutsCache {
	return &WorkoutsCache{
		Store: NewStore[[]domain.WorkoutRecord](domain.CacheWorkouts, workoutsKey, ttl, kv, log, opts...),
	}
}

// TargetsCache caches the derived training targets.
type TargetsCache struct {
	*Store[domain.TrainingTargets]
}

// NewTargetsCache creates the training targets cache.
func NewTargetsCache(kv ports.KeyValueStore, ttl time.Duration, log ports.Logger, opts ...StoreOption) *TargetsCache {
	return &TargetsCache{
		Store: NewStore[domain.TrainingTargets](domain.CacheTargets, targetsKey, ttl, kv, log, opts...),
	}
}
