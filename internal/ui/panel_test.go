package ui

import (
	"image"
	"testing"

	"lifebg/internal/core"
	"lifebg/internal/loop"
)

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func newPanel(t *testing.T, opts loop.Options) (*Panel, *loop.Loop) {
	t.Helper()
	l := loop.New(opts, nil)
	p := NewPanel(l, DefaultPanelWidth)
	p.Layout(1000)
	p.Refresh()
	return p, l
}

func controlByKey(t *testing.T, p *Panel, key string) *controlState {
	t.Helper()
	for i := range p.controls {
		if p.controls[i].control.Key == key {
			return &p.controls[i]
		}
	}
	t.Fatalf("no control %q", key)
	return nil
}

func TestPanelLayout(t *testing.T) {
	p, _ := newPanel(t, loop.DefaultOptions())
	b := p.Bounds()
	if b.Max.X != 1000-toolbarMargin || b.Dx() != DefaultPanelWidth {
		t.Fatalf("panel bounds %v", b)
	}
	if b.Min.Y < toolbarMargin+toolbarButtonH {
		t.Fatal("panel overlaps the toolbar")
	}
	for _, a := range p.actions {
		if !a.rect.In(b) {
			t.Fatalf("action %q outside panel: %v", a.action.Key, a.rect)
		}
	}
	for _, c := range p.controls {
		if !c.plusRect.In(b) || !c.minusRect.In(b) || c.minusRect.Overlaps(c.plusRect) {
			t.Fatalf("control %q buttons misplaced", c.control.Key)
		}
	}
}

func TestPanelAdjustClamps(t *testing.T) {
	opts := loop.DefaultOptions()
	opts.Rules = core.RuleSet{MinSurvival: 2, MaxSurvival: 3, Birth: 8}
	p, l := newPanel(t, opts)

	birth := controlByKey(t, p, loop.KeyBirth)
	if !birth.hasValue || birth.value != 8 {
		t.Fatalf("birth state %+v", birth)
	}
	if p.canAdjust(birth, 1) {
		t.Fatal("birth is already at its max")
	}
	x, y := center(birth.plusRect)
	if !p.Click(x, y) || l.Rules().Birth != 8 {
		t.Fatal("plus at max should be consumed without change")
	}
	x, y = center(birth.minusRect)
	p.Click(x, y)
	if l.Rules().Birth != 7 || birth.value != 7 {
		t.Fatalf("birth = %d", l.Rules().Birth)
	}

	brush := controlByKey(t, p, loop.KeyBrushRadius)
	x, y = center(brush.plusRect)
	p.Click(x, y)
	if l.BrushRadius() != 2 {
		t.Fatalf("brush = %d", l.BrushRadius())
	}
}

func TestPanelActions(t *testing.T) {
	p, l := newPanel(t, loop.DefaultOptions())
	for _, a := range p.actions {
		if a.action.Key != "preset:Maze" {
			continue
		}
		x, y := center(a.rect)
		if !p.Click(x, y) {
			t.Fatal("action click not consumed")
		}
	}
	if l.Rules() != (core.RuleSet{MinSurvival: 3, MaxSurvival: 4, Birth: 3}) {
		t.Fatalf("rules = %+v", l.Rules())
	}
	if got := controlByKey(t, p, loop.KeyMaxSurvival).value; got != 4 {
		t.Fatalf("panel should refresh after an action, max survival shows %d", got)
	}
}

func TestPanelConsumesClicksOnBackground(t *testing.T) {
	p, l := newPanel(t, loop.DefaultOptions())
	b := p.Bounds()
	if !p.Click(b.Min.X+1, b.Max.Y-2) {
		t.Fatal("click on panel background should be consumed")
	}
	if p.Click(b.Min.X-5, b.Min.Y) {
		t.Fatal("click outside the panel should not be consumed")
	}
	if l.Rules() != core.Conway() {
		t.Fatal("background click changed state")
	}
}
