// Command gofftdemo runs a forward/inverse round trip on a small signal and
// prints the recovered samples, the way the teacher's examples/example.go
// demonstrated the package from the command line.
package main

import (
	"fmt"

	gofft "github.com/arbor-dsp/gofft"
)

func main() {
	signal := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	k, err := gofft.FFT(len(signal))
	if err != nil {
		fmt.Println("fft:", err)
		return
	}
	fmt.Println("kernel:", k)

	spectrum, err := k.RealForward(signal)
	if err != nil {
		fmt.Println("forward:", err)
		return
	}
	fmt.Println("spectrum:", spectrum)

	recovered, err := k.RealInverse(spectrum)
	if err != nil {
		fmt.Println("inverse:", err)
		return
	}
	fmt.Println("recovered:", recovered)
}
