// Package blow defines spirometry blow records and trimming of their
// leading zero padding.
//
// A blow is one forced-exhalation attempt recorded as cumulative exhaled
// volume in raw device units. Devices left-pad the series with zeros; the
// declared point count identifies how many trailing samples are real.
package blow

import (
	"errors"
	"fmt"
)

// Errors returned by record validation and trimming.
var (
	ErrNumPoints   = errors.New("blow: point count must be at least 1")
	ErrShortSeries = errors.New("blow: series shorter than declared point count plus one")
	ErrLeadingPad  = errors.New("blow: leading padding contains a non-zero sample")
)

// Record is one spirometry forced-exhalation attempt. The identifier fields
// are opaque to curve derivation and only travel along with the derived
// outputs.
type Record struct {
	SubjectID int64
	VisitID   int
	BlowOrder int
	BlowIndex int

	// NumPoints is the number of real (non-padding) samples at the end of
	// Series.
	NumPoints int

	// Series holds cumulative exhaled volume in raw device units, including
	// the leading zero padding.
	Series []int
}

// Validate checks that the record can be trimmed: NumPoints must be at least
// 1 and Series must contain at least NumPoints+1 samples so that a single
// leading zero survives the trim.
func (r *Record) Validate() error {
	if r.NumPoints < 1 {
		return fmt.Errorf("%w: got %d", ErrNumPoints, r.NumPoints)
	}

	if len(r.Series) < r.NumPoints+1 {
		return fmt.Errorf("%w: %d samples, %d declared points", ErrShortSeries, len(r.Series), r.NumPoints)
	}

	return nil
}

// Trim strips the leading run of zero padding down to a single zero, keeping
// the final NumPoints+1 samples. The retained zero preserves the volume
// change from the first time step.
//
// The padding prefix of length len(Series)-NumPoints must be all zero; a
// non-zero sample there means the record is malformed and Trim refuses to
// proceed. The first element of the returned series is always 0.
func Trim(r Record) ([]int, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	numZeros := len(r.Series) - r.NumPoints
	for i := 0; i < numZeros; i++ {
		if r.Series[i] != 0 {
			return nil, fmt.Errorf("%w: value %d at index %d", ErrLeadingPad, r.Series[i], i)
		}
	}

	trimmed := make([]int, r.NumPoints+1)
	copy(trimmed, r.Series[numZeros-1:])

	return trimmed, nil
}
