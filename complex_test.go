package gofft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFromRealZeroPadsAndTruncates(t *testing.T) {
	x := []float64{1, 2, 3}

	same := FromReal(x, 0)
	want := []complex128{1, 2, 3}
	if diff := cmp.Diff(want, same); diff != "" {
		t.Errorf("FromReal(x, 0) mismatch (-want +got):\n%s", diff)
	}

	padded := FromReal(x, 5)
	wantPadded := []complex128{1, 2, 3, 0, 0}
	if diff := cmp.Diff(wantPadded, padded); diff != "" {
		t.Errorf("FromReal(x, 5) mismatch (-want +got):\n%s", diff)
	}

	truncated := FromReal(x, 2)
	wantTruncated := []complex128{1, 2}
	if diff := cmp.Diff(wantTruncated, truncated); diff != "" {
		t.Errorf("FromReal(x, 2) mismatch (-want +got):\n%s", diff)
	}
}

func TestRealDiscardsImaginaryParts(t *testing.T) {
	x := []complex128{complex(1, 5), complex(-2, 3), complex(0, -1)}
	got := Real(x)
	want := []float64{1, -2, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Real mismatch (-want +got):\n%s", diff)
	}
}

func TestSquaredMagnitudesMatchesMagnitudesSquared(t *testing.T) {
	x := complexRand(17)
	mags := Magnitudes(x)
	sq := SquaredMagnitudes(x)
	for i := range mags {
		want := mags[i] * mags[i]
		if diff := cmp.Diff(want, sq[i], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("SquaredMagnitudes[%d] mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestCreateConjugatesRoundTripsDiscardConjugates(t *testing.T) {
	for _, n := range []int{8, 9, 16, 21} {
		k, err := FFT(n)
		if err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		reals := make([]float64, n)
		for i := range reals {
			reals[i] = float64(i%5) - 2
		}
		y, err := k.RealForward(reals)
		if err != nil {
			t.Fatalf("RealForward(%d): %v", n, err)
		}

		half := DiscardConjugates(y)
		rebuilt, err := CreateConjugates(half, n)
		if err != nil {
			t.Fatalf("CreateConjugates(%d): %v", n, err)
		}
		if diff := cmp.Diff(y, rebuilt, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("CreateConjugates(DiscardConjugates(Y), %d) mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestCreateConjugatesRejectsInconsistentLength(t *testing.T) {
	half := make([]complex128, 5)
	if _, err := CreateConjugates(half, 6); err == nil {
		t.Errorf("expected LengthError for outputLength inconsistent with len(half)")
	} else if _, ok := err.(*LengthError); !ok {
		t.Errorf("expected *LengthError, got %T: %v", err, err)
	}
}

func TestRealInputProducesConjugateSymmetricSpectrum(t *testing.T) {
	for _, n := range []int{8, 9, 16, 21, 29, 37} {
		k, err := FFT(n)
		if err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		reals := make([]float64, n)
		for i := range reals {
			reals[i] = float64(i*i%7) - 3
		}
		x, err := k.RealForward(reals)
		if err != nil {
			t.Fatalf("RealForward(%d): %v", n, err)
		}

		if e := math.Abs(imag(x[0])); e > 1e-6 {
			t.Errorf("n=%d: X[0] = %v is not real (imag part %v)", n, x[0], e)
		}
		for kk := 1; kk < n; kk++ {
			want := cmplx.Conj(x[n-kk])
			if e := cmplx.Abs(want - x[kk]); e > 1e-6 {
				t.Errorf("n=%d: X[%d] = %v, want conj(X[%d]) = %v (diff %v)", n, kk, x[kk], n-kk, want, e)
			}
		}
	}
}

func TestParsevalHolds(t *testing.T) {
	for _, n := range []int{5, 8, 16, 29, 37, 100} {
		k, err := FFT(n)
		if err != nil {
			t.Fatalf("FFT(%d): %v", n, err)
		}
		x := complexRand(n)
		y := copyVector(x)
		if err := k.InPlaceForward(y); err != nil {
			t.Fatalf("InPlaceForward(%d): %v", n, err)
		}

		var timeEnergy, freqEnergy float64
		for _, v := range x {
			timeEnergy += real(v)*real(v) + imag(v)*imag(v)
		}
		for _, v := range y {
			freqEnergy += real(v)*real(v) + imag(v)*imag(v)
		}
		freqEnergy /= float64(n)

		if diff := cmp.Diff(timeEnergy, freqEnergy, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Errorf("n=%d: Parseval mismatch (-timeEnergy +freqEnergy/N):\n%s", n, diff)
		}
	}
}
