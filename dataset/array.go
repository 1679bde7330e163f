package dataset

import (
	"fmt"

	"github.com/cwbudde/algo-spiro/blow"
)

// Named array identifiers emitted by Build.
const (
	FlowVolumeInChannels   = "flow_volume_in_channels"    // [M, N, 2]: flow, volume
	FlowByVolumeOneChannel = "flow_by_volume_one_channel" // [M, N, 1]
	VolumeByTimeOneChannel = "volume_by_time_one_channel" // [M, N, 1]
	ThreeCurvesInChannels  = "three_curves_in_channels"   // [M, N, 3]: flow, volume, flow-by-volume
	DerivedFeatures        = "derived_features"           // [M, 5], reserved, zero-filled
)

// Array is a dense, row-major numeric array with an explicit shape.
type Array struct {
	Shape []int
	Data  []float64
}

// NumElems returns the product of the shape dimensions.
func (a Array) NumElems() int {
	n := 1
	for _, dim := range a.Shape {
		n *= dim
	}

	return n
}

// Dataset is the derived output for a whole batch: the per-record
// representations plus the stacked named arrays.
type Dataset struct {
	Blows  []Blow
	Arrays map[string]Array
}

// Build derives every record and stacks the fixed-length curves into the
// named model-input arrays. Each record contributes duplicates consecutive
// identical rows, so for M records the leading dimension is M*duplicates.
//
// The derived_features array is a reserved output slot and is always
// zero-filled; FEF values are available per record on each Blow.
func Build(records []blow.Record, duplicates int, opts ...Option) (*Dataset, error) {
	if duplicates < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDuplicates, duplicates)
	}

	cfg := ApplyOptions(opts...)

	blows := make([]Blow, 0, len(records))
	for _, rec := range records {
		b, err := deriveBlow(rec, cfg)
		if err != nil {
			return nil, err
		}
		blows = append(blows, b)
	}

	n := cfg.MaxNumPoints
	rows := len(blows) * duplicates

	flowAndVolume := Array{Shape: []int{rows, n, 2}, Data: make([]float64, rows*n*2)}
	flowByVolume := Array{Shape: []int{rows, n, 1}, Data: make([]float64, rows*n)}
	volumeByTime := Array{Shape: []int{rows, n, 1}, Data: make([]float64, rows*n)}
	threeCurves := Array{Shape: []int{rows, n, 3}, Data: make([]float64, rows*n*3)}
	features := Array{Shape: []int{rows, 5}, Data: make([]float64, rows*5)}

	row := 0
	for _, b := range blows {
		for d := 0; d < duplicates; d++ {
			for i := 0; i < n; i++ {
				flowAndVolume.Data[(row*n+i)*2] = b.FlowPadZero[i]
				flowAndVolume.Data[(row*n+i)*2+1] = b.VolumePadLast[i]

				flowByVolume.Data[row*n+i] = b.FlowVolumePadZero[i]
				volumeByTime.Data[row*n+i] = b.VolumePadLast[i]

				threeCurves.Data[(row*n+i)*3] = b.FlowPadZero[i]
				threeCurves.Data[(row*n+i)*3+1] = b.VolumePadLast[i]
				threeCurves.Data[(row*n+i)*3+2] = b.FlowVolumePadZero[i]
			}
			row++
		}
	}

	return &Dataset{
		Blows: blows,
		Arrays: map[string]Array{
			FlowVolumeInChannels:   flowAndVolume,
			FlowByVolumeOneChannel: flowByVolume,
			VolumeByTimeOneChannel: volumeByTime,
			ThreeCurvesInChannels:  threeCurves,
			DerivedFeatures:        features,
		},
	}, nil
}
