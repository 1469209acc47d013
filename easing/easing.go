package easing

import (
	"fmt"

	"github.com/fogleman/ease"
)

// An Easing selects the curve used to reshape normalised progress.
type Easing int

// Supported easings. In and Out are the quadratic curves.
const (
	None Easing = iota
	In
	Out
	InQuad
	OutQuad
	InOutQuad
	InCubic
	OutCubic
	InOutCubic
	InQuart
	OutQuart
	InOutQuart
	InQuint
	OutQuint
	InOutQuint
	InSine
	OutSine
	InOutSine
	InExpo
	OutExpo
	InOutExpo
	InCirc
	OutCirc
	InOutCirc
	InElastic
	OutElastic
	InOutElastic
	InBack
	OutBack
	InOutBack
	InBounce
	OutBounce
	InOutBounce
)

type curve struct {
	name string
	fn   func(float64) float64
}

var curves = [...]curve{
	None:         {"none", ease.Linear},
	In:           {"in", ease.InQuad},
	Out:          {"out", ease.OutQuad},
	InQuad:       {"inQuad", ease.InQuad},
	OutQuad:      {"outQuad", ease.OutQuad},
	InOutQuad:    {"inOutQuad", ease.InOutQuad},
	InCubic:      {"inCubic", ease.InCubic},
	OutCubic:     {"outCubic", ease.OutCubic},
	InOutCubic:   {"inOutCubic", ease.InOutCubic},
	InQuart:      {"inQuart", ease.InQuart},
	OutQuart:     {"outQuart", ease.OutQuart},
	InOutQuart:   {"inOutQuart", ease.InOutQuart},
	InQuint:      {"inQuint", ease.InQuint},
	OutQuint:     {"outQuint", ease.OutQuint},
	InOutQuint:   {"inOutQuint", ease.InOutQuint},
	InSine:       {"inSine", ease.InSine},
	OutSine:      {"outSine", ease.OutSine},
	InOutSine:    {"inOutSine", ease.InOutSine},
	InExpo:       {"inExpo", ease.InExpo},
	OutExpo:      {"outExpo", ease.OutExpo},
	InOutExpo:    {"inOutExpo", ease.InOutExpo},
	InCirc:       {"inCirc", ease.InCirc},
	OutCirc:      {"outCirc", ease.OutCirc},
	InOutCirc:    {"inOutCirc", ease.InOutCirc},
	InElastic:    {"inElastic", ease.InElastic},
	OutElastic:   {"outElastic", ease.OutElastic},
	InOutElastic: {"inOutElastic", ease.InOutElastic},
	InBack:       {"inBack", ease.InBack},
	OutBack:      {"outBack", ease.OutBack},
	InOutBack:    {"inOutBack", ease.InOutBack},
	InBounce:     {"inBounce", ease.InBounce},
	OutBounce:    {"outBounce", ease.OutBounce},
	InOutBounce:  {"inOutBounce", ease.InOutBounce},
}

// Apply reshapes progress t in [0,1]. None returns t unchanged; callers are
// responsible for keeping t inside the unit interval.
func Apply(e Easing, t float64) float64 {
	if e == None || !e.valid() {
		return t
	}
	return curves[e].fn(t)
}

func (e Easing) valid() bool {
	return e >= 0 && int(e) < len(curves)
}

func (e Easing) String() string {
	if !e.valid() {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return curves[e].name
}

// Parse looks up an easing by its name, e.g. "outQuad". The empty string is None.
func Parse(name string) (Easing, error) {
	if name == "" {
		return None, nil
	}
	for i, c := range curves {
		if c.name == name {
			return Easing(i), nil
		}
	}
	return None, fmt.Errorf("unknown easing %q", name)
}

// UnmarshalYAML lets config and script files name easings directly.
func (e *Easing) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := Parse(name)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
