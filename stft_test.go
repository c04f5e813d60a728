package gofft

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestStreamEmitsAtHopSize(t *testing.T) {
	var results []ChunkResult
	s, err := NewStream(8, 4, Rectangular, func(r ChunkResult) {
		results = append(results, r)
	})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}

	samples := make([]float64, 20)
	for i := range samples {
		samples[i] = float64(i)
	}
	if err := s.Push(samples); err != nil {
		t.Fatalf("Push: %v", err)
	}

	// 20 samples, chunk 8, hop 4: chunks start at 0,4,8,12 (16+8=24 > 20).
	wantStarts := []int{0, 4, 8, 12}
	if len(results) != len(wantStarts) {
		t.Fatalf("got %d chunks, want %d", len(results), len(wantStarts))
	}
	for i, r := range results {
		if r.StartIndex != wantStarts[i] {
			t.Errorf("chunk %d: StartIndex = %d, want %d", i, r.StartIndex, wantStarts[i])
		}
		if len(r.Spectrum) != 8 {
			t.Errorf("chunk %d: len(Spectrum) = %d, want 8", i, len(r.Spectrum))
		}
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(results) != len(wantStarts)+1 {
		t.Fatalf("after Flush, got %d chunks, want %d", len(results), len(wantStarts)+1)
	}
	if results[len(results)-1].StartIndex != 16 {
		t.Errorf("flushed chunk StartIndex = %d, want 16", results[len(results)-1].StartIndex)
	}
}

func TestStreamRejectsBadHop(t *testing.T) {
	if _, err := NewStream(8, 0, Rectangular, func(ChunkResult) {}); err == nil {
		t.Errorf("expected error for hop=0")
	}
	if _, err := NewStream(8, 9, Rectangular, func(ChunkResult) {}); err == nil {
		t.Errorf("expected error for hop > n")
	}
}

func TestChunkStatsMatchesDirectComputation(t *testing.T) {
	var got ChunkStats
	var spectrum []complex128
	s, err := NewStream(16, 16, Hann, func(r ChunkResult) {
		got = r.Stats
		spectrum = r.Spectrum
	})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	samples := make([]float64, 16)
	for i := range samples {
		samples[i] = float64(i % 4)
	}
	if err := s.Push(samples); err != nil {
		t.Fatalf("Push: %v", err)
	}

	mags := Magnitudes(spectrum)
	var sum float64
	for _, m := range mags {
		sum += m
	}
	wantMean := sum / float64(len(mags))
	var variance float64
	for _, m := range mags {
		d := m - wantMean
		variance += d * d
	}
	wantStdDev := math.Sqrt(variance / float64(len(mags)))

	want := ChunkStats{Mean: wantMean, StdDev: wantStdDev}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("ChunkStats mismatch (-want +got):\n%s", diff)
	}
}
