package config

import (
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	p, err := Parse("particles", nil)
	if err != nil {
		t.Fatal(err)
	}
	if p != Default() {
		t.Fatalf("expected defaults, got %+v", p)
	}
	if got := p.FrameInterval(); got != time.Second/30 {
		t.Fatalf("unexpected frame interval %v", got)
	}
}

func TestParseFlags(t *testing.T) {
	p, err := Parse("particles", []string{"-backend", "tcell", "-fps", "60", "-a", ":5000", "-limit", "0", "-hud"})
	if err != nil {
		t.Fatal(err)
	}
	if p.Backend != BackendTcell || p.FPS != 60 || p.Address != ":5000" || p.Limit != 0 || !p.HUD {
		t.Fatalf("flags not applied: %+v", p)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := [][]string{
		{"-backend", "curses"},
		{"-fps", "0"},
		{"-limit", "-1"},
		{"-pointer", "1.5"},
		{"-ambient", "-0.1"},
		{"-unknown"},
	}
	for _, args := range tests {
		if _, err := Parse("particles", args); err == nil {
			t.Errorf("expected %v to be rejected", args)
		}
	}
}
