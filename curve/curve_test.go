package curve

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestDerive_Example(t *testing.T) {
	base := Derive([]int{0, 1, 2, 3, 4}, WithVolumeScale(1), WithTimeScale(1))

	wantVolume := []float64{0, 1, 2, 3, 4}
	wantFlow := []float64{0, 1, 1, 1, 1}

	for i := range wantVolume {
		if !almostEqual(base.Volume[i], wantVolume[i], tolerance) {
			t.Errorf("Volume[%d]: got %g, want %g", i, base.Volume[i], wantVolume[i])
		}
		if !almostEqual(base.Flow[i], wantFlow[i], tolerance) {
			t.Errorf("Flow[%d]: got %g, want %g", i, base.Flow[i], wantFlow[i])
		}
	}

	if !almostEqual(base.VolumeMax, 4, tolerance) {
		t.Errorf("VolumeMax: got %g, want 4", base.VolumeMax)
	}
	if !almostEqual(base.VolumeLast, 4, tolerance) {
		t.Errorf("VolumeLast: got %g, want 4", base.VolumeLast)
	}
	if !almostEqual(base.FlowMax, 1, tolerance) {
		t.Errorf("FlowMax: got %g, want 1", base.FlowMax)
	}
	if !almostEqual(base.FlowLast, 1, tolerance) {
		t.Errorf("FlowLast: got %g, want 1", base.FlowLast)
	}
}

func TestDerive_DerivativeIdentity(t *testing.T) {
	trimmed := []int{0, 3, 10, 25, 54, 101, 169, 258, 255, 260}
	cfg := DefaultConfig()
	base := Derive(trimmed)

	if base.Flow[0] != 0 {
		t.Fatalf("Flow[0]: got %g, want 0", base.Flow[0])
	}

	for i := 1; i < len(trimmed); i++ {
		want := (base.Volume[i] - base.Volume[i-1]) / cfg.TimeScale
		if !almostEqual(base.Flow[i], want, 1e-9) {
			t.Errorf("Flow[%d]: got %g, want %g", i, base.Flow[i], want)
		}
	}
}

func TestDerive_NegativeFlowOnRegression(t *testing.T) {
	// Raw cumulative series can regress slightly on real devices.
	base := Derive([]int{0, 10, 8, 12}, WithVolumeScale(1), WithTimeScale(1))

	if !almostEqual(base.Flow[2], -2, tolerance) {
		t.Errorf("Flow[2]: got %g, want -2", base.Flow[2])
	}
	if !almostEqual(base.FlowMax, 10, tolerance) {
		t.Errorf("FlowMax: got %g, want 10", base.FlowMax)
	}
	if !almostEqual(base.VolumeMax, 12, tolerance) {
		t.Errorf("VolumeMax: got %g, want 12", base.VolumeMax)
	}
}

func TestDerive_DefaultScales(t *testing.T) {
	base := Derive([]int{0, 1000})

	if !almostEqual(base.Volume[1], 1.0, tolerance) {
		t.Errorf("Volume[1]: got %g, want 1.0 (1000 mL)", base.Volume[1])
	}
	if !almostEqual(base.Flow[1], 100.0, 1e-9) {
		t.Errorf("Flow[1]: got %g, want 100.0 (1 L per 10 ms)", base.Flow[1])
	}
}

func TestDerive_Empty(t *testing.T) {
	base := Derive(nil)
	if base.Volume != nil || base.Flow != nil {
		t.Fatal("expected zero Base for empty input")
	}
}

func TestDerive_Deterministic(t *testing.T) {
	trimmed := []int{0, 5, 14, 30, 29, 31}

	a := Derive(trimmed)
	b := Derive(trimmed)

	for i := range a.Volume {
		if a.Volume[i] != b.Volume[i] || a.Flow[i] != b.Flow[i] {
			t.Fatalf("index %d: reruns differ", i)
		}
	}
	if a.VolumeMax != b.VolumeMax || a.FlowMax != b.FlowMax {
		t.Fatal("summary values differ between reruns")
	}
}

func TestApplyOptions_IgnoresInvalid(t *testing.T) {
	cfg := ApplyOptions(WithVolumeScale(-1), WithTimeScale(0))

	if cfg.VolumeScale != DefaultVolumeScale {
		t.Errorf("VolumeScale: got %g, want default", cfg.VolumeScale)
	}
	if cfg.TimeScale != DefaultTimeScale {
		t.Errorf("TimeScale: got %g, want default", cfg.TimeScale)
	}
}
