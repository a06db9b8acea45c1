package cmd

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/they4kman/gosweep/game"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		value string
		want  game.Coordinates
		ok    bool
	}{
		{"3,4", game.Coordinates{X: 3, Y: 4}, true},
		{" 0 , 12 ", game.Coordinates{X: 0, Y: 12}, true},
		{"3", game.Coordinates{}, false},
		{"-1,2", game.Coordinates{}, false},
		{"70000,2", game.Coordinates{}, false},
		{"a,b", game.Coordinates{}, false},
	}

	for _, test := range tests {
		got, err := parseCoordinates(test.value)
		if (err == nil) != test.ok || got != test.want {
			t.Errorf("parseCoordinates(%q) = %v, %v", test.value, got, err)
		}
	}
}

func TestParseWindowSize(t *testing.T) {
	got, err := parseWindowSize("800x600")
	if err != nil || got != pixel.V(800, 600) {
		t.Errorf("parseWindowSize(800x600) = %v, %v", got, err)
	}

	for _, value := range []string{"800", "800xabc", "x600"} {
		if _, err := parseWindowSize(value); err == nil {
			t.Errorf("parseWindowSize(%q) succeeded", value)
		}
	}
}
