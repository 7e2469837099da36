package must

import "math"

func sign(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(1, f)
}

func d2r(degrees float64) float64 { return degrees * math.Pi / 180. }
