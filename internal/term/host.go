// Package term hosts the background loop in a terminal using tcell. Ticks from
// the wall-clock scheduler are posted into the tcell event queue, so the loop
// is only ever touched by the event-loop goroutine.
package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifebg/internal/core"
	"lifebg/internal/loop"
)

type tickEvent struct{ when time.Time }

func (e *tickEvent) When() time.Time { return e.when }

const quitRetry = 5 * time.Millisecond

type quitEvent struct{ when time.Time }

func (e *quitEvent) When() time.Time { return e.when }

// eventScheduler turns ticker callbacks into tcell events.
type eventScheduler struct {
	ticker core.TickerScheduler
	screen tcell.Screen
	onTick func()
}

func (s *eventScheduler) Start(interval time.Duration, onTick func()) {
	s.onTick = onTick
	s.ticker.Start(interval, func() {
		// A full queue drops the tick; the next one redraws anyway.
		_ = s.screen.PostEvent(&tickEvent{when: time.Now()})
	})
}

func (s *eventScheduler) Stop() { s.ticker.Stop() }

func (s *eventScheduler) fire() {
	if s.onTick != nil {
		s.onTick()
	}
}

// Host runs the loop against a tcell screen.
type Host struct {
	screen tcell.Screen
	loop   *loop.Loop
	sched  *eventScheduler

	buttons tcell.ButtonMask
}

// NewHost constructs a Host for an initialized screen.
func NewHost(screen tcell.Screen, opts loop.Options) *Host {
	l := loop.New(opts, NewSurface(screen))
	l.OnRedraw(screen.Show)
	return &Host{
		screen: screen,
		loop:   l,
		sched:  &eventScheduler{screen: screen},
	}
}

// Loop exposes the hosted loop.
func (h *Host) Loop() *loop.Loop { return h.loop }

// Run processes events until the user quits or ctx is cancelled. The ticker
// is released before Run returns.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()
	h.loop.Resize(h.screen.Size())
	h.loop.Start(h.sched)
	defer h.loop.Close()

	exited := make(chan struct{})
	defer close(exited)
	stop := context.AfterFunc(ctx, func() { h.postQuit(exited) })
	defer stop()

	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return errors.New("terminal event stream closed")
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !h.handle(ev) {
			return ctx.Err()
		}
	}
}

// postQuit wakes PollEvent after cancellation. A full event queue is retried
// until the event is accepted or Run has returned.
func (h *Host) postQuit(exited <-chan struct{}) {
	for h.screen.PostEvent(&quitEvent{when: time.Now()}) != nil {
		select {
		case <-exited:
			return
		case <-time.After(quitRetry):
		}
	}
}

// handle dispatches one event and reports whether to keep running.
func (h *Host) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tickEvent:
		h.sched.fire()
	case *quitEvent:
		return false
	case *tcell.EventResize:
		h.loop.Resize(ev.Size())
		h.screen.Sync()
		h.loop.Redraw()
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			h.loop.ApplyKey(ev.Rune())
		}
	}
	return true
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := h.buttons&tcell.Button1 != 0
	h.buttons = ev.Buttons()

	w, ht := h.screen.Size()
	inside := x >= 0 && y >= 0 && x < w && y < ht
	switch {
	case pressed && !wasPressed:
		h.loop.PointerDown(x, y)
	case pressed && inside:
		h.loop.PointerMove(x, y)
	case pressed:
		h.loop.PointerLeave()
	case wasPressed:
		h.loop.PointerUp()
	}
}
