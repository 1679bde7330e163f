package curve

// RightPad returns curve adjusted to exactly n samples. A curve longer than n
// is truncated to its first n samples and fill is unused; a shorter curve is
// right-padded with fill. The result is always a fresh slice.
//
// The asymmetry is deliberate: after padding the last element equals fill,
// while after truncation the last element is whatever the curve's n-th sample
// was. Volume curves are padded either with 0 or with their own last value;
// flow curves are always padded with 0.
func RightPad(curve []float64, fill float64, n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	copied := copy(out, curve)
	for i := copied; i < n; i++ {
		out[i] = fill
	}

	return out
}

// TimeAxis returns the shared fixed-length time grid time[i] = i*timeScale
// for i in [0, n). The grid is identical for every record of a batch.
func TimeAxis(n int, timeScale float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * timeScale
	}

	return out
}
