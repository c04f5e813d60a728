package gofft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestResampleToSameLengthIsIdentity(t *testing.T) {
	x := make([]float64, 32)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	got, err := Resample(x, len(x))
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if diff := cmp.Diff(x, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("Resample to same length mismatch (-want +got):\n%s", diff)
	}
}

func TestResamplePreservesLowFrequencyTone(t *testing.T) {
	n := 64
	freq := 4.0 // cycles over the whole buffer
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(n))
	}

	upsampled, err := Resample(x, 128)
	if err != nil {
		t.Fatalf("Resample up: %v", err)
	}
	if len(upsampled) != 128 {
		t.Fatalf("len(upsampled) = %d, want 128", len(upsampled))
	}

	// Sampling the upsampled signal back at the original rate should
	// reproduce the original tone, up to the resampler's own rescaling.
	for i := 0; i < n; i++ {
		want := x[i]
		got := upsampled[2*i]
		if e := math.Abs(want - got); e > 0.05 {
			t.Errorf("upsampled[%d] = %v, want ~%v (diff %v)", 2*i, got, want, e)
		}
	}
}

func TestResampleRejectsNonPositiveOutput(t *testing.T) {
	if _, err := Resample([]float64{1, 2, 3, 4}, 0); err == nil {
		t.Errorf("expected error for outputLength=0")
	}
}
