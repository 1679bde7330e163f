package curve

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Base holds the unpadded volume-time and flow-time curves derived from one
// trimmed blow series, along with their scalar summaries. A Base is computed
// once and never mutated afterwards.
//
//nolint:revive
type Base struct {
	Volume []float64 // cumulative exhaled volume in liters
	Flow   []float64 // first derivative of Volume, liters per second

	VolumeMax  float64 // FVC: maximum exhaled volume
	VolumeLast float64
	FlowMax    float64
	FlowLast   float64
}

// Derive converts a trimmed integer series into volume and flow curves.
//
// Volume is the series rescaled by VolumeScale. Flow is the discrete first
// derivative of volume over TimeScale with flow[0] = 0. Flow must be derived
// here, from the unpadded volume curve: differentiating after fixed-length
// zero padding would inject a large negative spike at the pad boundary of any
// blow shorter than the target length.
func Derive(trimmed []int, opts ...Option) Base {
	cfg := ApplyOptions(opts...)

	n := len(trimmed)
	if n == 0 {
		return Base{}
	}

	raw := make([]float64, n)
	for i, v := range trimmed {
		raw[i] = float64(v)
	}

	volume := make([]float64, n)
	vecmath.ScaleBlock(volume, raw, cfg.VolumeScale)

	flow := make([]float64, n)
	for i := 1; i < n; i++ {
		flow[i] = (volume[i] - volume[i-1]) / cfg.TimeScale
	}

	return Base{
		Volume:     volume,
		Flow:       flow,
		VolumeMax:  floats.Max(volume),
		VolumeLast: volume[n-1],
		FlowMax:    floats.Max(flow),
		FlowLast:   flow[n-1],
	}
}
