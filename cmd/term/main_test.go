package main

import "testing"

func TestNextSpeed(t *testing.T) {
	cases := map[int]int{1: 2, 2: 4, 4: 1, 3: 1}
	for in, want := range cases {
		if got := nextSpeed(in); got != want {
			t.Errorf("nextSpeed(%d): expected %d, got %d", in, want, got)
		}
	}
}
