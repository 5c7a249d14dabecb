//go:build ebiten

package app

import (
	"image/color"

	"lifebg/internal/core"
	"lifebg/internal/loop"
	"lifebg/internal/render"
	"lifebg/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var background = color.Black

// keyRunes translates ebiten keys into the shared loop bindings.
var keyRunes = map[ebiten.Key]rune{
	ebiten.KeySpace:        ' ',
	ebiten.KeyB:            'b',
	ebiten.KeyC:            'c',
	ebiten.KeyR:            'r',
	ebiten.KeyN:            'n',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyDigit1:       '1',
	ebiten.KeyDigit2:       '2',
	ebiten.KeyDigit3:       '3',
	ebiten.KeyDigit4:       '4',
}

// Game adapts the background loop to the ebiten.Game interface. Ebiten calls
// Update, Draw and Layout on one goroutine, so ticks, painting and resizes
// never interleave.
type Game struct {
	loop    *loop.Loop
	surface *render.RGBASurface
	painter *render.GridPainter
	sched   *core.FrameScheduler
	hud     *ui.HUD
	toolbar *ui.Overlay

	width, height int
}

// New constructs a Game and arms its frame-driven scheduler.
func New(opts loop.Options) *Game {
	surface := render.NewRGBASurface(0, 0)
	l := loop.New(opts, surface)
	sched := core.NewFrameScheduler()
	l.Start(sched)
	return &Game{
		loop:    l,
		surface: surface,
		painter: render.NewGridPainter(),
		sched:   sched,
		hud:     ui.NewHUD(l, ui.DefaultPanelWidth),
		toolbar: ui.NewOverlay(l),
	}
}

// Close releases the scheduler.
func (g *Game) Close() { g.loop.Close() }

// Update handles input and advances the loop when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.Close()
		return ebiten.Termination
	}
	for key, r := range keyRunes {
		if inpututil.IsKeyJustPressed(key) {
			g.loop.ApplyKey(r)
		}
	}

	consumed := g.toolbar.Update(g.width, g.height)
	if g.loop.ShowControls() && g.hud.Update(g.width) {
		consumed = true
	}
	g.handlePointer(consumed)

	g.sched.Pump()
	return nil
}

func (g *Game) handlePointer(consumed bool) {
	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < g.width && my < g.height
	overUI := g.toolbar.Contains(mx, my) || (g.loop.ShowControls() && g.hud.Contains(mx, my))

	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.loop.PointerUp()
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if !consumed && inside && !overUI {
			g.loop.PointerDown(mx, my)
		}
	case g.loop.Painting():
		if !inside {
			g.loop.PointerLeave()
			return
		}
		g.loop.PointerMove(mx, my)
	}
}

// Draw presents the last rendered frame plus the controls.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.painter.Blit(screen, g.surface)
	g.toolbar.Draw(screen)
	if g.loop.ShowControls() {
		g.hud.Draw(screen)
	}
}

// Layout reports the window size to the loop as the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.loop.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
