package gofft

import "github.com/montanaflynn/stats"

// ChunkStats summarizes the magnitude spectrum of one STFT chunk.
type ChunkStats struct {
	Mean   float64
	StdDev float64
}

// ChunkResult is delivered to a Stream's callback once per emitted chunk.
type ChunkResult struct {
	Spectrum   []complex128
	StartIndex int
	Stats      ChunkStats
}

// Stream runs a short-time Fourier transform over samples pushed
// incrementally: a fixed-size, optionally windowed FFT slid across the
// input at a configurable hop size.
type Stream struct {
	kernel   Kernel
	n        int
	hop      int
	window   Window
	onChunk  func(ChunkResult)
	tail     []float64
	consumed int
}

// NewStream builds a Stream with chunk size n and hop size hop (hop must be
// in [1, n]), calling onChunk once per emitted chunk.
func NewStream(n, hop int, w Window, onChunk func(ChunkResult)) (*Stream, error) {
	if hop <= 0 || hop > n {
		return nil, &LengthError{Context: "NewStream", Expected: n, Got: hop}
	}
	k, err := FFT(n)
	if err != nil {
		return nil, err
	}
	return &Stream{kernel: k, n: n, hop: hop, window: w, onChunk: onChunk}, nil
}

// Push appends samples to the stream, emitting every chunk that becomes
// available at the configured hop size.
func (s *Stream) Push(samples []float64) error {
	s.tail = append(s.tail, samples...)
	for len(s.tail) >= s.n {
		if err := s.emit(s.tail[:s.n], s.consumed); err != nil {
			return err
		}
		s.consumed += s.hop
		s.tail = s.tail[s.hop:]
	}
	return nil
}

// Flush zero-pads and emits whatever tail remains, then clears the tail.
// The start-index count is kept, so later chunks continue numbering from it.
func (s *Stream) Flush() error {
	if len(s.tail) == 0 {
		return nil
	}
	padded := make([]float64, s.n)
	copy(padded, s.tail)
	if err := s.emit(padded, s.consumed); err != nil {
		return err
	}
	s.tail = nil
	return nil
}

func (s *Stream) emit(chunk []float64, start int) error {
	windowed := append([]float64(nil), chunk...)
	ApplyWindow(windowed, s.window)

	spectrum, err := s.kernel.RealForward(windowed)
	if err != nil {
		return err
	}

	mags := stats.LoadRawData(Magnitudes(spectrum))
	mean, _ := mags.Mean()
	stdDev, _ := mags.StandardDeviation()

	s.onChunk(ChunkResult{
		Spectrum:   spectrum,
		StartIndex: start,
		Stats:      ChunkStats{Mean: mean, StdDev: stdDev},
	})
	return nil
}
