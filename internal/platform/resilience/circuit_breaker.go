// Package resilience guards calls into the catalog store.
package resilience

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

type transition struct {
	from, to CircuitState
}

// CircuitBreaker fails fast for OpenTimeout once FailureThreshold consecutive calls failed, then
// admits HalfOpenProbes trial calls. All probes must succeed to close it again.
type CircuitBreaker struct {
	cfg   BreakerConfig
	clock clockwork.Clock

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openedAt  time.Time
	inFlight  int
	succeeded int
}

func NewCircuitBreaker(cfg BreakerConfig, clock clockwork.Clock) *CircuitBreaker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CircuitBreaker{
		cfg:   cfg.withDefaults(),
		clock: clock,
		state: CircuitStateClosed,
	}
}

func (b *CircuitBreaker) Name() string {
	return b.cfg.Name
}

// Execute runs fn when the breaker admits it and records the outcome. A caller cancelling its
// own context is not a dependency failure.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.Allow(); err != nil {
		return err
	}

	err := fn(ctx)
	switch {
	case err == nil:
		b.RecordSuccess()
	case errors.Is(err, context.Canceled):
		b.release()
	default:
		b.RecordFailure()
	}
	return err
}

func (b *CircuitBreaker) Allow() error {
	var changed []transition
	defer func() { b.notify(changed) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.clock.Since(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		changed = b.moveTo(changed, CircuitStateHalfOpen)
	}
	if b.state == CircuitStateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenProbes {
			return ErrCircuitOpen
		}
		b.inFlight++
	}
	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	var changed []transition
	defer func() { b.notify(changed) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.inFlight = max(b.inFlight-1, 0)
		b.succeeded++
		if b.succeeded >= b.cfg.HalfOpenProbes && b.inFlight == 0 {
			changed = b.moveTo(changed, CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	var changed []transition
	defer func() { b.notify(changed) }()

	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			changed = b.moveTo(changed, CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		changed = b.moveTo(changed, CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.clock.Now()
	}
}

// State reports half_open for an open breaker whose timeout has elapsed, even before the next
// call moves it there.
func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.clock.Since(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateHalfOpen {
		b.inFlight = max(b.inFlight-1, 0)
	}
}

func (b *CircuitBreaker) moveTo(changed []transition, to CircuitState) []transition {
	from := b.state
	b.state = to
	b.inFlight = 0
	b.succeeded = 0
	switch to {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.clock.Now()
	}
	return append(changed, transition{from: from, to: to})
}

func (b *CircuitBreaker) notify(changed []transition) {
	if b.cfg.OnStateChange == nil {
		return
	}
	for _, t := range changed {
		b.cfg.OnStateChange(b.cfg.Name, t.from, t.to)
	}
}
