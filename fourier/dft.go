package fourier

import (
	"math"
	"math/cmplx"
)

// dftMagnitudes computes numCoeff magnitude-only DFT coefficients of in
// by direct summation: the numCoeffHalf lowest and numCoeffHalf highest
// frequency bins, skipping the interior ones a full-length DFT would
// otherwise produce. numCoeff must be odd — the coefficient at index
// dftSize/2 (the Nyquist bin) is shared between the low and high halves
// when dftSize is itself small, and an even split has no natural owner
// for it.
func dftMagnitudes(in []complex128, numCoeff int) ([]float64, error) {
	if numCoeff%2 == 0 {
		return nil, ErrEvenCoefficientCount
	}

	dftSize := len(in)
	ck := make([]float64, numCoeff)

	numCoeffHalf := numCoeff / 2
	if dftSize < numCoeff {
		numCoeffHalf = dftSize / 2
	}

	targetIdx := 0
	for k := 0; k <= numCoeffHalf; k++ {
		ck[targetIdx] = dftMagnitudeAt(in, k, dftSize)
		targetIdx++
	}

	if dftSize < numCoeff {
		targetIdx = numCoeff - numCoeffHalf
	}

	for k := dftSize - numCoeffHalf; k < dftSize; k++ {
		ck[targetIdx] = dftMagnitudeAt(in, k, dftSize)
		targetIdx++
	}

	return ck, nil
}

// dftMagnitudeAt returns |DFT(in)[k]| / dftSize via direct summation.
func dftMagnitudeAt(in []complex128, k, dftSize int) float64 {
	sum := complex(0, 0)
	prod := complex(1, 0)
	expfac := cmplx.Exp(complex(0, (-2*math.Pi*float64(k))/float64(dftSize)))
	for t := 0; t < dftSize; t++ {
		sum += in[t] * prod
		prod *= expfac
	}
	sum /= complex(float64(dftSize), 0)

	return cmplx.Abs(sum)
}

// maxCoefficient returns the largest value in ck[start:end], or 0 if
// the range is empty. end == 0 means "through the end of ck".
func maxCoefficient(ck []float64, start, end int) float64 {
	if end == 0 {
		end = len(ck)
	}

	max := 0.0
	for i := start; i < end; i++ {
		if ck[i] > max {
			max = ck[i]
		}
	}

	return max
}
