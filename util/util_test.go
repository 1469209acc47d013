package util

import (
	"math"
	"testing"
)

func TestParseColour(t *testing.T) {
	cases := []struct {
		in         string
		r, g, b, a float64
		wantErr    bool
	}{
		{"#ff0000", 1, 0, 0, 1, false},
		{"#00ff0080", 0, 1, 0, 128.0 / 255.0, false},
		{"#0000ff00", 0, 0, 1, 0, false},
		{"#fff", 0, 0, 0, 0, true},
		{"#00ff00zz", 0, 0, 0, 0, true},
		{"#gg0000", 0, 0, 0, 0, true},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseColour(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got.R-c.r) > 1e-9 || math.Abs(got.G-c.g) > 1e-9 || math.Abs(got.B-c.b) > 1e-9 || math.Abs(got.A-c.a) > 1e-9 {
				t.Fatalf("expected (%v %v %v %v), got %+v", c.r, c.g, c.b, c.a, got)
			}
		})
	}
}

func TestFormatColourRoundTrip(t *testing.T) {
	for _, s := range []string{"#ff000080", "#12345678", "#ffffffff"} {
		c, err := ParseColour(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if got := FormatColour(c); got != s {
			t.Fatalf("expected %s, got %s", s, got)
		}
	}
}
