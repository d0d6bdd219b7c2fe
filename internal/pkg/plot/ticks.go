package plot

import (
	"strconv"

	gonum "gonum.org/v1/plot"
)

// DurationStep picks a human-readable tick step in seconds for an axis whose
// upper bound is max. Zero means the default ticker should be used.
func DurationStep(max float64) float64 {
	switch {
	case max > 600:
		return 60
	case max > 30:
		return 30
	case max > 5:
		return 5
	default:
		return 0
	}
}

// DurationTicks marks the axis every DurationStep seconds from zero.
type DurationTicks struct{}

func (DurationTicks) Ticks(min, max float64) []gonum.Tick {
	step := DurationStep(max)
	if step == 0 {
		return gonum.DefaultTicks{}.Ticks(min, max)
	}

	var ticks []gonum.Tick
	for v := 0.0; v < max; v += step {
		ticks = append(ticks, gonum.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}

	return ticks
}
