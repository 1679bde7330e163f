// Package fef computes forced expiratory flow (FEF) metrics from unpadded
// spirometry flow and volume curves.
//
// FEF25, FEF50, and FEF75 are the flow rates at the points where 25%, 50%,
// and 75% of the maximum exhaled volume (FVC) has been expelled. FEF25-75 is
// the mean flow over the middle half of the exhalation. The inputs must be
// the base curves from before any fixed-length padding; padded samples would
// distort the volume thresholds and the mean window.
package fef

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Errors returned by Compute.
var (
	ErrLengthMismatch = errors.New("fef: flow and volume lengths differ")
	ErrTooShort       = errors.New("fef: need more than one sample")
	ErrIncompleteBlow = errors.New("fef: no sample reaches 75% of max volume")
	ErrIndexOrder     = errors.New("fef: threshold indices are not non-decreasing")
)

// Result holds the FEF metrics for one blow, along with the curve indices at
// which each volume threshold was first crossed.
//
//nolint:revive
type Result struct {
	FEF25   float64
	FEF50   float64
	FEF75   float64
	FEF2575 float64

	Idx25 int
	Idx50 int
	Idx75 int
}

// Compute derives FEF25, FEF50, FEF75, and FEF25-75 from the unpadded flow
// and volume curves. volumeMax is the blow's FVC.
//
// Each threshold index is the first sample whose volume reaches the threshold
// fraction of volumeMax; plateaus resolve to the earliest crossing. A blow in
// which no sample reaches 75% of volumeMax is too incomplete to score and
// yields ErrIncompleteBlow.
func Compute(flow, volume []float64, volumeMax float64) (Result, error) {
	if len(flow) != len(volume) {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(flow), len(volume))
	}

	if len(flow) <= 1 {
		return Result{}, ErrTooShort
	}

	idx75 := firstAtOrAbove(volume, 0.75*volumeMax)
	if idx75 < 0 {
		return Result{}, fmt.Errorf("%w: FVC %g", ErrIncompleteBlow, volumeMax)
	}

	// Reachable whenever the 75% threshold is: the thresholds only decrease.
	idx25 := firstAtOrAbove(volume, 0.25*volumeMax)
	idx50 := firstAtOrAbove(volume, 0.50*volumeMax)

	if idx25 > idx50 || idx50 > idx75 {
		return Result{}, fmt.Errorf("%w: %d, %d, %d", ErrIndexOrder, idx25, idx50, idx75)
	}

	return Result{
		FEF25:   flow[idx25],
		FEF50:   flow[idx50],
		FEF75:   flow[idx75],
		FEF2575: stat.Mean(flow[idx25:idx75+1], nil),
		Idx25:   idx25,
		Idx50:   idx50,
		Idx75:   idx75,
	}, nil
}

// firstAtOrAbove returns the index of the first sample >= threshold, or -1.
func firstAtOrAbove(x []float64, threshold float64) int {
	for i, v := range x {
		if v >= threshold {
			return i
		}
	}

	return -1
}
