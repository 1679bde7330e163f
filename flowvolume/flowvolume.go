// Package flowvolume interpolates a flow-time curve onto a uniform volume
// grid, producing the standard spirometry flow-volume curve.
//
// Interpolation against an x-axis is only well-defined for a monotonic
// independent variable, and measured volume curves can regress slightly from
// sensor noise. The projection therefore applies a running maximum to the
// volume curve first. This is a deliberate approximation: it gives results
// extremely close to breaking ties with a small amount of added noise, and
// downstream consumers depend on this exact behavior.
package flowvolume

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by Interpolate.
var (
	ErrLengthMismatch = errors.New("flowvolume: flow and volume lengths differ")
	ErrEmptyCurve     = errors.New("flowvolume: empty input curve")
	ErrNumPoints      = errors.New("flowvolume: need at least two output points")
	ErrNotMonotonic   = errors.New("flowvolume: projected volume is not non-decreasing")
)

// Interpolate projects flow onto n evenly spaced volume query points over
// [minVol, maxVol], endpoints included. Query points outside the observed
// volume range map to flow value 0.
//
// The flow and volume curves must have equal length and be padded
// consistently with each other. The output always has exactly n samples.
func Interpolate(flow, volume []float64, minVol, maxVol float64, n int) ([]float64, error) {
	if len(flow) != len(volume) {
		return nil, ErrLengthMismatch
	}

	if len(volume) == 0 {
		return nil, ErrEmptyCurve
	}

	if n < 2 {
		return nil, ErrNumPoints
	}

	mono := runningMax(volume)
	for i := 1; i < len(mono); i++ {
		if mono[i] < mono[i-1] {
			return nil, ErrNotMonotonic
		}
	}

	queries := floats.Span(make([]float64, n), minVol, maxVol)

	out := make([]float64, n)
	for i, q := range queries {
		out[i] = interpAt(q, mono, flow)
	}

	return out, nil
}

// runningMax returns the prefix maximum of x.
func runningMax(x []float64) []float64 {
	out := make([]float64, len(x))

	run := math.Inf(-1)
	for i, v := range x {
		if v > run {
			run = v
		}
		out[i] = run
	}

	return out
}

// interpAt linearly interpolates ys against the non-decreasing xs at x,
// returning 0 outside [xs[0], xs[len-1]]. A query landing on a plateau of
// equal xs values resolves against the plateau's last sample.
func interpAt(x float64, xs, ys []float64) float64 {
	last := len(xs) - 1

	if x < xs[0] || x > xs[last] {
		return 0
	}

	// Largest j with xs[j] <= x.
	j := sort.Search(len(xs), func(i int) bool { return xs[i] > x }) - 1
	if j >= last {
		return ys[last]
	}

	frac := (x - xs[j]) / (xs[j+1] - xs[j])

	return ys[j] + frac*(ys[j+1]-ys[j])
}
