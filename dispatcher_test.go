package gofft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFFTRejectsAboveCeiling(t *testing.T) {
	_, err := FFT(dispatcherCeiling + 1)
	require.Error(t, err)
	var sizeErr *SizeError
	require.ErrorAs(t, err, &sizeErr)
}

func TestSelectKernelRuleOrder(t *testing.T) {
	require.IsType(t, &fixed2Kernel{}, selectKernel(2))
	require.IsType(t, &fixed3Kernel{}, selectKernel(3))
	require.IsType(t, &naiveKernel{}, selectKernel(4), "power-of-two sizes under 16 should still use Naive")
	require.IsType(t, &naiveKernel{}, selectKernel(8))
	require.IsType(t, &radix2Kernel{}, selectKernel(16))
	require.IsType(t, &naiveKernel{}, selectKernel(18), "non-power-of-two sizes under 24 should use Naive")
	require.IsType(t, &primeKernel{}, selectKernel(29))
	require.IsType(t, &compositeKernel{}, selectKernel(100))
}

func TestDispatcherCacheIsShared(t *testing.T) {
	k1, err := FFT(255)
	require.NoError(t, err)
	k2, err := FFT(255)
	require.NoError(t, err)
	require.Same(t, k1, k2)
}
