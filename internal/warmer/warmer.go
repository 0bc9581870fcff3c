// Package warmer keeps league-wide cached views fresh on an interval.
package warmer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-stats-aggregator/internal/logging"
	"github.com/preston-bernstein/nba-stats-aggregator/internal/metrics"
)

const defaultInterval = 30 * time.Minute

// Task recomputes one cached view.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Warmer runs its tasks once on start and then on every tick.
type Warmer struct {
	tasks    []Task
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the warm loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the warmer has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Warmer with sane defaults.
func New(tasks []Task, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Warmer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Warmer{
		tasks:    tasks,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins warming until the context is cancelled or Stop is called.
func (w *Warmer) Start(ctx context.Context) {
	w.startMu.Lock()
	if w.started {
		w.startMu.Unlock()
		return
	}
	w.started = true
	w.startMu.Unlock()

	w.ticker = time.NewTicker(w.interval)

	go func() {
		logging.Info(w.logger, "warmer started", slog.Int64(logging.FieldDurationMS, w.interval.Milliseconds()), logging.FieldCount, len(w.tasks))
		w.warmOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.done:
				w.stopTicker()
				logging.Info(w.logger, "warmer stopped")
				return
			case <-w.ticker.C:
				w.warmOnce(ctx)
			}
		}
	}()
}

// Stop halts the warm loop.
func (w *Warmer) Stop(ctx context.Context) error {
	_ = ctx
	w.stopOnce.Do(func() {
		close(w.done)
		w.stopTicker()
	})
	return nil
}

// warmOnce runs every task; the cycle fails if any task fails, but all tasks run.
func (w *Warmer) warmOnce(ctx context.Context) {
	start := w.now()
	w.recordAttempt(start)

	var errs []error
	for _, task := range w.tasks {
		if task.Run == nil {
			continue
		}
		taskStart := time.Now()
		if err := task.Run(ctx); err != nil {
			logging.Warn(w.logger, "warm task failed", "task", task.Name, "error", err,
				slog.Int64(logging.FieldDurationMS, time.Since(taskStart).Milliseconds()))
			errs = append(errs, fmt.Errorf("%s: %w", task.Name, err))
		}
	}
	err := errors.Join(errs...)

	duration := w.now().Sub(start)
	w.metrics.RecordWarmerCycle(duration, err)
	if err != nil {
		logging.Error(w.logger, "warmer cycle failed", err, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))
		w.recordFailure(err, start)
		return
	}
	w.recordSuccess(start)
	logging.Info(w.logger, "warmer refreshed caches",
		logging.FieldCount, len(w.tasks),
		logging.FieldDurationMS, duration.Milliseconds(),
	)
}

func (w *Warmer) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
	}
}

func (w *Warmer) recordAttempt(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.LastAttempt = at
}

func (w *Warmer) recordSuccess(at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures = 0
	w.status.LastError = ""
	w.status.LastSuccess = at
}

func (w *Warmer) recordFailure(err error, at time.Time) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()
	w.status.ConsecutiveFailures++
	if err != nil {
		w.status.LastError = err.Error()
	}
	w.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (w *Warmer) Status() Status {
	w.statusMu.RLock()
	defer w.statusMu.RUnlock()
	return w.status
}
