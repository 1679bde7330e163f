// Package dataset maps batches of spirometry blow records through the full
// curve-derivation pipeline and packs the results into fixed-shape named
// arrays suitable as model input.
//
// Each record is derived independently: trim, base curves, fixed-length
// padding, flow-volume interpolation, FEF metrics. The batch map is
// fail-fast; a malformed or incomplete blow aborts the whole batch rather
// than silently emitting wrong clinical curves.
package dataset

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spiro/blow"
	"github.com/cwbudde/algo-spiro/curve"
	"github.com/cwbudde/algo-spiro/flowvolume"
	"github.com/cwbudde/algo-spiro/measure/fef"
)

// ErrDuplicates indicates an invalid duplication count.
var ErrDuplicates = errors.New("dataset: duplicates must be at least 1")

// Blow holds every representation derived from one record: the unpadded base
// curves with their summaries, the fixed-length padded curves, the
// interpolated flow-volume curve, and the FEF metrics.
type Blow struct {
	Record blow.Record
	Base   curve.Base

	Time              []float64
	VolumePadZero     []float64
	VolumePadLast     []float64
	FlowPadZero       []float64
	FlowVolumePadZero []float64

	FEF fef.Result
}

// DeriveBlow runs the full pipeline for a single record. The result depends
// only on the inputs; rerunning yields bit-identical output.
func DeriveBlow(rec blow.Record, opts ...Option) (Blow, error) {
	return deriveBlow(rec, ApplyOptions(opts...))
}

func deriveBlow(rec blow.Record, cfg Config) (Blow, error) {
	trimmed, err := blow.Trim(rec)
	if err != nil {
		return Blow{}, fmt.Errorf("dataset: subject %d blow %d: %w", rec.SubjectID, rec.BlowIndex, err)
	}

	base := curve.Derive(trimmed,
		curve.WithVolumeScale(cfg.VolumeScale),
		curve.WithTimeScale(cfg.TimeScale),
	)

	b := Blow{
		Record:        rec,
		Base:          base,
		Time:          curve.TimeAxis(cfg.MaxNumPoints, cfg.TimeScale),
		VolumePadZero: curve.RightPad(base.Volume, 0, cfg.MaxNumPoints),
		VolumePadLast: curve.RightPad(base.Volume, base.VolumeLast, cfg.MaxNumPoints),
		FlowPadZero:   curve.RightPad(base.Flow, 0, cfg.MaxNumPoints),
	}

	// The zero-padded volume curve is the interpolation axis: its trailing
	// zeros collapse onto the max-volume plateau under the running max, and
	// the matching zero-padded flow keeps the pair consistent.
	fv, err := flowvolume.Interpolate(
		b.FlowPadZero,
		b.VolumePadZero,
		cfg.MinInterpVolume,
		cfg.MaxInterpVolume,
		cfg.MaxNumPoints,
	)
	if err != nil {
		return Blow{}, fmt.Errorf("dataset: subject %d blow %d: %w", rec.SubjectID, rec.BlowIndex, err)
	}
	b.FlowVolumePadZero = fv

	// FEF is scored on the unpadded curves; padded samples would shift the
	// volume thresholds.
	res, err := fef.Compute(base.Flow, base.Volume, base.VolumeMax)
	if err != nil {
		return Blow{}, fmt.Errorf("dataset: subject %d blow %d: %w", rec.SubjectID, rec.BlowIndex, err)
	}
	b.FEF = res

	return b, nil
}
