package loop

import (
	"testing"

	"lifebg/internal/core"
)

func TestKeyBindings(t *testing.T) {
	l := New(DefaultOptions(), nil)

	l.ApplyKey(' ')
	if l.Running() {
		t.Fatal("space should pause")
	}
	l.ApplyKey('c')
	if !l.ShowControls() {
		t.Fatal("c should show controls")
	}
	l.ApplyKey('2')
	if l.Rules() != (core.RuleSet{MinSurvival: 1, MaxSurvival: 1, Birth: 1}) {
		t.Fatalf("2 should select Gnarl, got %+v", l.Rules())
	}
	l.ApplyKey('r')
	if l.Rules() != core.Conway() {
		t.Fatal("r should reset rules")
	}
	if l.ApplyKey('z') {
		t.Fatal("unbound key reported as handled")
	}
}

func TestBrushAndCellSizeClamp(t *testing.T) {
	opts := DefaultOptions()
	opts.CellSize = MaxCellSize
	opts.BrushRadius = MaxBrushRadius
	l := New(opts, nil)

	l.Apply(CmdCellSizeUp)
	l.Apply(CmdBrushUp)
	if l.CellSize() != MaxCellSize || l.BrushRadius() != MaxBrushRadius {
		t.Fatalf("cell=%d brush=%d", l.CellSize(), l.BrushRadius())
	}
	for i := 0; i < 30; i++ {
		l.Apply(CmdCellSizeDown)
		l.Apply(CmdBrushDown)
	}
	if l.CellSize() != MinCellSize || l.BrushRadius() != MinBrushRadius {
		t.Fatalf("cell=%d brush=%d", l.CellSize(), l.BrushRadius())
	}
}

func TestParameterSurface(t *testing.T) {
	l := New(DefaultOptions(), nil)

	if !l.SetIntParameter(KeyBirth, 2) || l.Rules().Birth != 2 {
		t.Fatal("birth not updated")
	}
	if !l.SetIntParameter(KeyBrushRadius, 7) || l.BrushRadius() != 7 {
		t.Fatal("brush not updated")
	}
	if l.SetIntParameter("bogus", 1) {
		t.Fatal("unknown key accepted")
	}

	snap := l.Parameters()
	if p, ok := snap.Lookup(KeyBirth); !ok || p.Value != "2" {
		t.Fatalf("snapshot birth = %+v", p)
	}
	if p, ok := snap.Lookup(KeyCellSize); !ok || p.Value != "12" {
		t.Fatalf("snapshot cell size = %+v", p)
	}

	for _, ctrl := range l.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
	}
}

func TestActions(t *testing.T) {
	l := New(DefaultOptions(), nil)
	keys := map[string]bool{}
	for _, a := range l.Actions() {
		keys[a.Key] = true
	}
	for _, want := range []string{"preset:Seeds", "cell:4", "reset"} {
		if !keys[want] {
			t.Fatalf("missing action %q", want)
		}
	}

	if !l.RunAction("preset:Seeds") || l.Rules() != (core.RuleSet{MinSurvival: 0, MaxSurvival: 2, Birth: 3}) {
		t.Fatal("preset action failed")
	}
	if !l.RunAction("cell:4") || l.CellSize() != 4 {
		t.Fatal("cell size action failed")
	}
	if !l.RunAction("reset") || l.Rules() != core.Conway() {
		t.Fatal("reset action failed")
	}
	if l.RunAction("preset:Nope") || l.RunAction("cell:x") || l.RunAction("launch") {
		t.Fatal("invalid actions should be rejected")
	}
}
