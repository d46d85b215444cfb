package detector

import (
	"math"

	"botshield/internal/model"
)

// colinearSegments counts the sliding windows of three consecutive
// pointer samples that share a slope. Two vertical segments count as
// colinear.
func colinearSegments(samples []model.PointerSample) int {
	count := 0
	for i := 2; i < len(samples); i++ {
		p1, p2, p3 := samples[i-2], samples[i-1], samples[i]

		v1 := p1.X == p2.X
		v2 := p2.X == p3.X
		if v1 || v2 {
			if v1 && v2 {
				count++
			}
			continue
		}

		slope1 := float64(p2.Y-p1.Y) / float64(p2.X-p1.X)
		slope2 := float64(p3.Y-p2.Y) / float64(p3.X-p2.X)
		if slope1 == slope2 {
			count++
		}
	}
	return count
}

// uniformTiming reports whether inter-sample deltas are implausibly
// regular: standard deviation under 5ms across more than 5 deltas.
func uniformTiming(samples []model.PointerSample) bool {
	if len(samples) < 2 {
		return false
	}

	deltas := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		deltas = append(deltas, float64(samples[i].Time-samples[i-1].Time))
	}
	if len(deltas) <= minTimingSamples {
		return false
	}

	var sum float64
	for _, d := range deltas {
		sum += d
	}
	mean := sum / float64(len(deltas))

	var variance float64
	for _, d := range deltas {
		variance += (d - mean) * (d - mean)
	}
	variance /= float64(len(deltas))

	return math.Sqrt(variance) < timingStdDevMs
}
