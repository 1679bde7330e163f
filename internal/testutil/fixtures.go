package testutil

import "github.com/cwbudde/algo-spiro/blow"

// PaddedRecord builds a blow record with numZeros leading zeros followed by
// the given real samples.
func PaddedRecord(numZeros int, samples ...int) blow.Record {
	series := make([]int, numZeros, numZeros+len(samples))
	series = append(series, samples...)

	return blow.Record{
		NumPoints: len(samples),
		Series:    series,
	}
}

// RampSeries returns a cumulative series rising by step per sample, starting
// at 0, with n samples.
func RampSeries(n, step int) []int {
	out := make([]int, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + step
	}
	return out
}
