package chroma

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// SpectrumBins is the number of unique DFT magnitudes of a 12-point real signal
const SpectrumBins = NumPitchClasses/2 + 1

// IntervalSpectrum returns the DFT magnitudes (bins 0..6) of a pitch-class
// vector. Rotation only changes the phases, so the result is identical for
// every transposition of v.
func IntervalSpectrum(v Vector) []float64 {
	coeffs := fft.FFTReal(v.Floats())

	magnitudes := make([]float64, SpectrumBins)
	for k := range magnitudes {
		magnitudes[k] = cmplx.Abs(coeffs[k])
	}
	return magnitudes
}
