package core

import "testing"

func TestRuleSetNext(t *testing.T) {
	conway := Conway()
	for n := 0; n <= MaxNeighbors; n++ {
		if got, want := conway.Next(true, n), n == 2 || n == 3; got != want {
			t.Fatalf("alive with %d neighbors: got %v want %v", n, got, want)
		}
		if got, want := conway.Next(false, n), n == 3; got != want {
			t.Fatalf("dead with %d neighbors: got %v want %v", n, got, want)
		}
	}
}

func TestInvertedSurvivalNeverMatches(t *testing.T) {
	r := RuleSet{MinSurvival: 5, MaxSurvival: 2, Birth: 42}
	for n := 0; n <= MaxNeighbors; n++ {
		if r.Next(true, n) || r.Next(false, n) {
			t.Fatalf("inverted rule matched at %d neighbors", n)
		}
	}
}

func TestParseRuleSet(t *testing.T) {
	r, err := ParseRuleSet(" 3, 4 ,3")
	if err != nil {
		t.Fatal(err)
	}
	if r != (RuleSet{MinSurvival: 3, MaxSurvival: 4, Birth: 3}) {
		t.Fatalf("unexpected rule %+v", r)
	}
	for _, bad := range []string{"", "1,2", "a,b,c", "1,2,3,4"} {
		if _, err := ParseRuleSet(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestPresets(t *testing.T) {
	want := map[string]RuleSet{
		"conway": {2, 3, 3},
		"Gnarl":  {1, 1, 1},
		"MAZE":   {3, 4, 3},
		"seeds":  {0, 2, 3},
	}
	for name, rules := range want {
		got, ok := LookupPreset(name)
		if !ok || got != rules {
			t.Fatalf("preset %q = %+v,%v want %+v", name, got, ok, rules)
		}
	}
	if _, ok := LookupPreset("highlife"); ok {
		t.Fatal("unknown preset should not resolve")
	}

	list := Presets()
	list[0].Rules.Birth = 7
	if got, _ := LookupPreset("conway"); got.Birth != 3 {
		t.Fatal("Presets must return a copy")
	}
}

func TestRuleSetStringAndClamp(t *testing.T) {
	if s := Conway().String(); s != "2-3/3" {
		t.Fatalf("got %q", s)
	}
	if s := (RuleSet{1, 1, 1}).String(); s != "1/1" {
		t.Fatalf("got %q", s)
	}
	if c := (RuleSet{-2, 12, 9}).Clamp(); c != (RuleSet{0, 8, 8}) {
		t.Fatalf("clamp = %+v", c)
	}
}
