package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifebg/internal/loop"
)

func newSimHost(t *testing.T, w, h int, opts loop.Options) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	return NewHost(screen, opts), screen
}

func painted(screen tcell.SimulationScreen, x, y int) bool {
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg != tcell.ColorDefault
}

func termOptions() loop.Options {
	opts := loop.DefaultOptions()
	opts.CellSize = 1
	opts.BrushRadius = 0
	opts.Paused = true
	return opts
}

func TestResizeBuildsGrid(t *testing.T) {
	h, _ := newSimHost(t, 20, 10, termOptions())
	if !h.handle(tcell.NewEventResize(20, 10)) {
		t.Fatal("resize should not stop the host")
	}
	g := h.Loop().Grid()
	if g.Rows() != 10 || g.Cols() != 20 {
		t.Fatalf("grid = %dx%d", g.Rows(), g.Cols())
	}
}

func TestMousePaintsImmediately(t *testing.T) {
	h, screen := newSimHost(t, 20, 10, termOptions())
	h.handle(tcell.NewEventResize(20, 10))
	h.Loop().Grid().Clear()
	h.Loop().Redraw()

	h.handle(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	h.handle(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone))
	h.handle(tcell.NewEventMouse(7, 4, tcell.ButtonNone, tcell.ModNone))
	h.handle(tcell.NewEventMouse(9, 4, tcell.ButtonNone, tcell.ModNone))

	g := h.Loop().Grid()
	if !g.Alive(4, 3) || !g.Alive(4, 5) {
		t.Fatal("drag should paint both positions")
	}
	if g.Alive(4, 7) || g.Alive(4, 9) {
		t.Fatal("release should end the painting session")
	}
	if !painted(screen, 3, 4) || painted(screen, 9, 4) {
		t.Fatal("screen should reflect painted cells without a tick")
	}
}

func TestKeysAndTicks(t *testing.T) {
	h, _ := newSimHost(t, 20, 10, termOptions())
	h.handle(tcell.NewEventResize(20, 10))
	g := h.Loop().Grid()
	g.Clear()
	g.Set(5, 4, true)
	g.Set(5, 5, true)
	g.Set(5, 6, true)

	h.sched.Start(time.Hour, h.Loop().Tick)
	defer h.sched.Stop()

	h.handle(&tickEvent{when: time.Now()})
	if h.Loop().Generation() != 0 {
		t.Fatal("paused tick should not advance")
	}
	h.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	h.handle(&tickEvent{when: time.Now()})
	if !h.Loop().Grid().Alive(4, 5) || h.Loop().Generation() != 1 {
		t.Fatal("running tick should advance the blinker")
	}

	if h.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should stop the host")
	}
	if h.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should stop the host")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h, _ := newSimHost(t, 20, 10, termOptions())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func fillQueue(screen tcell.Screen) {
	for screen.PostEvent(tcell.NewEventInterrupt(nil)) == nil {
	}
}

func TestQuitRetriesWhenQueueFull(t *testing.T) {
	h, screen := newSimHost(t, 20, 10, termOptions())
	fillQueue(screen)

	exited := make(chan struct{})
	defer close(exited)
	go h.postQuit(exited)

	got := make(chan bool, 1)
	go func() {
		for {
			switch screen.PollEvent().(type) {
			case nil:
				got <- false
				return
			case *quitEvent:
				got <- true
				return
			}
		}
	}()
	select {
	case ok := <-got:
		if !ok {
			t.Fatal("event stream closed before the quit event arrived")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("quit event lost on a full queue")
	}
}

func TestRunStopsOnCancelWithFullQueue(t *testing.T) {
	h, screen := newSimHost(t, 20, 10, termOptions())
	fillQueue(screen)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
