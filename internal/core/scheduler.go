package core

import (
	"sync"
	"time"
)

// Scheduler invokes onTick on a fixed cadence until stopped.
type Scheduler interface {
	Start(interval time.Duration, onTick func())
	Stop()
}

// FrameScheduler is driven by a host frame loop: the host calls Pump once per
// frame and ticks fire on the same goroutine whenever an interval has elapsed.
type FrameScheduler struct {
	step   *FixedStep
	onTick func()
}

// NewFrameScheduler returns an idle FrameScheduler.
func NewFrameScheduler() *FrameScheduler { return &FrameScheduler{} }

// Start arms the scheduler.
func (s *FrameScheduler) Start(interval time.Duration, onTick func()) {
	s.step = NewFixedStep(interval)
	s.onTick = onTick
}

// Stop disarms the scheduler; later Pump calls do nothing.
func (s *FrameScheduler) Stop() { s.onTick = nil }

// Pump fires the tick callback if one is due and reports whether it did.
func (s *FrameScheduler) Pump() bool {
	if s.onTick == nil || s.step == nil || !s.step.ShouldStep() {
		return false
	}
	s.onTick()
	return true
}

// TickerScheduler fires onTick from a background goroutine backed by a
// time.Ticker. Callers that need single-threaded mutation should have onTick
// hand the tick to their own event loop.
type TickerScheduler struct {
	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Start launches the ticker goroutine, replacing any previous one.
func (s *TickerScheduler) Start(interval time.Duration, onTick func()) {
	s.Stop()
	if interval <= 0 {
		interval = DefaultInterval
	}
	stop := make(chan struct{})
	done := make(chan struct{})

	s.mu.Lock()
	s.stop, s.done = stop, done
	s.mu.Unlock()

	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				onTick()
			}
		}
	}()
}

// Stop halts the ticker and waits for its goroutine to exit. It is idempotent.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// ManualScheduler records the tick callback so tests can fire ticks
// synchronously.
type ManualScheduler struct {
	interval time.Duration
	onTick   func()
}

// Start records the callback.
func (s *ManualScheduler) Start(interval time.Duration, onTick func()) {
	s.interval = interval
	s.onTick = onTick
}

// Stop forgets the callback.
func (s *ManualScheduler) Stop() { s.onTick = nil }

// Running reports whether a callback is armed.
func (s *ManualScheduler) Running() bool { return s.onTick != nil }

// Interval returns the cadence passed to Start.
func (s *ManualScheduler) Interval() time.Duration { return s.interval }

// Fire invokes the callback n times.
func (s *ManualScheduler) Fire(n int) {
	for i := 0; i < n && s.onTick != nil; i++ {
		s.onTick()
	}
}
