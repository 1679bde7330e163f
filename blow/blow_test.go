package blow

import (
	"errors"
	"testing"
)

func TestTrim_KeepsOneLeadingZero(t *testing.T) {
	rec := Record{
		NumPoints: 4,
		Series:    []int{0, 0, 0, 1, 2, 3, 4},
	}

	got, err := Trim(rec)
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}

	want := []int{0, 1, 2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestTrim_LengthInvariant(t *testing.T) {
	cases := []struct {
		name      string
		numPoints int
		numZeros  int
	}{
		{"single point", 1, 3},
		{"minimal padding", 5, 1},
		{"long padding", 7, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			series := make([]int, tc.numZeros+tc.numPoints)
			for i := 0; i < tc.numPoints; i++ {
				series[tc.numZeros+i] = i + 1
			}

			got, err := Trim(Record{NumPoints: tc.numPoints, Series: series})
			if err != nil {
				t.Fatalf("Trim: %v", err)
			}

			if len(got) != tc.numPoints+1 {
				t.Errorf("length: got %d, want %d", len(got), tc.numPoints+1)
			}
			if got[0] != 0 {
				t.Errorf("first element: got %d, want 0", got[0])
			}
		})
	}
}

func TestTrim_NonZeroPadding(t *testing.T) {
	rec := Record{
		NumPoints: 3,
		Series:    []int{0, 7, 0, 1, 2, 3},
	}

	if _, err := Trim(rec); !errors.Is(err, ErrLeadingPad) {
		t.Fatalf("got %v, want ErrLeadingPad", err)
	}
}

func TestTrim_DoesNotAliasInput(t *testing.T) {
	series := []int{0, 0, 1, 2}
	got, err := Trim(Record{NumPoints: 2, Series: series})
	if err != nil {
		t.Fatalf("Trim: %v", err)
	}

	got[1] = 99
	if series[2] != 1 {
		t.Fatal("Trim returned a slice aliasing the input series")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		rec  Record
		want error
	}{
		{"valid", Record{NumPoints: 2, Series: []int{0, 1, 2}}, nil},
		{"zero points", Record{NumPoints: 0, Series: []int{0}}, ErrNumPoints},
		{"negative points", Record{NumPoints: -1, Series: []int{0}}, ErrNumPoints},
		{"no padding zero left", Record{NumPoints: 3, Series: []int{1, 2, 3}}, ErrShortSeries},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rec.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}
