package ui

import (
	"image/color"
	"testing"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 4: "IV", 9: "IX", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestWaveIndicator_Label(t *testing.T) {
	i := NewWaveIndicator(0, 0, color.White)
	if got := i.Label(2, 3); got != "Wave II / III" {
		t.Fatalf("expected %q, got %q", "Wave II / III", got)
	}
	if got := i.Label(1, 0); got != "" {
		t.Fatalf("expected no label without waves, got %q", got)
	}
}

func TestPauseButton_Toggle(t *testing.T) {
	b := NewPauseButton(50, 50, 12, color.White, color.Black)
	if !b.IsClicked(55, 55) || b.IsClicked(70, 50) {
		t.Fatal("unexpected hit test")
	}
	b.TogglePause()
	if !b.IsPaused {
		t.Fatal("expected paused after toggle")
	}
	b.SetPaused(false)
	if b.IsPaused {
		t.Fatal("expected running after SetPaused(false)")
	}
}
