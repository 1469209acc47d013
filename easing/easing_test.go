package easing

import (
	"math"
	"testing"
)

func TestApplyNoneIsIdentity(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		if got := Apply(None, v); got != v {
			t.Fatalf("Apply(None, %v) = %v", v, got)
		}
	}
}

func TestApplyEndpoints(t *testing.T) {
	cases := []Easing{
		In, Out, InQuad, OutQuad, InOutQuad,
		InCubic, OutCubic, InOutCubic,
		InQuart, OutQuart, InOutQuart,
		InQuint, OutQuint, InOutQuint,
		InSine, OutSine, InOutSine,
		InCirc, OutCirc, InOutCirc,
		InBack, OutBack, InOutBack,
		OutBounce,
	}

	for _, e := range cases {
		t.Run(e.String(), func(t *testing.T) {
			if got := Apply(e, 0); math.Abs(got) > 1e-9 {
				t.Fatalf("expected 0 at t=0, got %v", got)
			}
			if got := Apply(e, 1); math.Abs(got-1) > 1e-9 {
				t.Fatalf("expected 1 at t=1, got %v", got)
			}
		})
	}
}

func TestQuadraticAliases(t *testing.T) {
	if Apply(In, 0.3) != Apply(InQuad, 0.3) {
		t.Fatalf("In should match InQuad")
	}
	if Apply(Out, 0.3) != Apply(OutQuad, 0.3) {
		t.Fatalf("Out should match OutQuad")
	}
	if Apply(InQuad, 0.5) >= 0.5 {
		t.Fatalf("InQuad should lag linear progress at the midpoint")
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		want    Easing
		wantErr bool
	}{
		{"", None, false},
		{"none", None, false},
		{"outQuad", OutQuad, false},
		{"inOutElastic", InOutElastic, false},
		{"wobble", None, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.name)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", c.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for e := None; e <= InOutBounce; e++ {
		got, err := Parse(e.String())
		if err != nil || got != e {
			t.Fatalf("round trip of %v gave %v (%v)", e, got, err)
		}
	}
	if s := Easing(-3).String(); s != "Easing(-3)" {
		t.Fatalf("unexpected name for invalid easing: %s", s)
	}
}
