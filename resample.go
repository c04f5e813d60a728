package gofft

// Resample changes the sample count of a real signal via frequency-domain
// truncation or zero-padding of its non-redundant spectrum half, rescaled
// by the output/input length ratio.
func Resample(x []float64, outputLength int) ([]float64, error) {
	n := len(x)
	if outputLength <= 0 {
		return nil, &LengthError{Context: "Resample", Expected: 1, Got: outputLength}
	}

	inK, err := FFT(n)
	if err != nil {
		return nil, err
	}
	spectrum, err := inK.RealForward(x)
	if err != nil {
		return nil, err
	}

	half := DiscardConjugates(spectrum)
	outHalfLen := outputLength/2 + 1
	resizedHalf := make([]complex128, outHalfLen)
	copy(resizedHalf, half)

	full, err := CreateConjugates(resizedHalf, outputLength)
	if err != nil {
		return nil, err
	}

	outK, err := FFT(outputLength)
	if err != nil {
		return nil, err
	}
	resampled, err := outK.RealInverse(full)
	if err != nil {
		return nil, err
	}

	scale := float64(outputLength) / float64(n)
	for i := range resampled {
		resampled[i] *= scale
	}
	return resampled, nil
}
