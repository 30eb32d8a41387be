// Package lookup holds the WeatherLookup component: the city input, the
// query state machine and the fetch orchestration that drives it.
//
// State moves Idle -> Loading -> {Failed | Succeeded} -> Loading -> ...
// Every lookup leaves Loading exactly once, whatever the outcome.
package lookup

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/i474232898/weather-lookup/internal/weather"
)

// Fetcher performs one current-conditions request. *weather.Service satisfies it.
type Fetcher interface {
	Current(ctx context.Context, city string) (weather.WeatherSnapshot, error)
}

// Result is the outcome of an asynchronous lookup.
type Result struct {
	Snapshot weather.WeatherSnapshot
	Err      error
}

// WeatherLookup owns the city input and the query state of one form instance.
//
// The mutex only keeps field access memory-safe. It does not serialise
// lookups: overlapping calls to Lookup all run and the last response to
// arrive wins. Trigger is the guarded entry point used by the UI.
type WeatherLookup struct {
	fetcher Fetcher
	logger  *zap.Logger

	mu    sync.Mutex
	city  string
	state State
}

func New(fetcher Fetcher, logger *zap.Logger) *WeatherLookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WeatherLookup{
		fetcher: fetcher,
		logger:  logger,
		state:   IdleState(),
	}
}

func (l *WeatherLookup) City() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.city
}

// SetCity stores the input value as typed; no trimming or validation.
func (l *WeatherLookup) SetCity(city string) {
	l.mu.Lock()
	l.city = city
	l.mu.Unlock()
}

func (l *WeatherLookup) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// CanTrigger reports whether the trigger action is enabled: not loading and
// a non-empty city.
func (l *WeatherLookup) CanTrigger() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.canTriggerLocked()
}

func (l *WeatherLookup) canTriggerLocked() bool {
	return l.state.Mode() != Loading && l.city != ""
}

// Trigger runs a lookup for the current city if the trigger is enabled and
// reports whether it did. A disabled trigger is a no-op.
func (l *WeatherLookup) Trigger(ctx context.Context) bool {
	city, ok := l.tryBegin()
	if !ok {
		return false
	}
	_, _ = l.run(ctx, city)
	return true
}

// TriggerAsync is Trigger with the request running in its own goroutine.
// The returned channel yields exactly one Result and is nil when the
// trigger was disabled.
func (l *WeatherLookup) TriggerAsync(ctx context.Context) (<-chan Result, bool) {
	city, ok := l.tryBegin()
	if !ok {
		return nil, false
	}
	return l.spawn(ctx, city), true
}

// Lookup enters Loading, fetches city and settles the state. It does not
// check CanTrigger.
func (l *WeatherLookup) Lookup(ctx context.Context, city string) (weather.WeatherSnapshot, error) {
	l.begin()
	return l.run(ctx, city)
}

// LookupAsync is Lookup as an explicit asynchronous task.
func (l *WeatherLookup) LookupAsync(ctx context.Context, city string) <-chan Result {
	l.begin()
	return l.spawn(ctx, city)
}

func (l *WeatherLookup) spawn(ctx context.Context, city string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		snap, err := l.run(ctx, city)
		out <- Result{Snapshot: snap, Err: err}
		close(out)
	}()
	return out
}

func (l *WeatherLookup) begin() {
	l.mu.Lock()
	l.state = LoadingState()
	l.mu.Unlock()
}

func (l *WeatherLookup) tryBegin() (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.canTriggerLocked() {
		return "", false
	}
	l.state = LoadingState()
	return l.city, true
}

// run performs the fetch; the deferred settle is the single exit from Loading.
func (l *WeatherLookup) run(ctx context.Context, city string) (snap weather.WeatherSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			snap, err = weather.WeatherSnapshot{}, fmt.Errorf("lookup panicked: %v", r)
		}
		l.settle(city, snap, err)
	}()

	return l.fetcher.Current(ctx, city)
}

func (l *WeatherLookup) settle(city string, snap weather.WeatherSnapshot, err error) {
	var next State
	if err != nil {
		next = FailedState(weather.Message(err))
		l.logger.Info("weather lookup failed",
			zap.String("city", city),
			zap.String("message", next.message),
			zap.Error(err))
	} else {
		next = SucceededState(snap)
		l.logger.Info("weather lookup succeeded", zap.String("city", city))
	}

	l.mu.Lock()
	l.state = next
	l.mu.Unlock()
}
