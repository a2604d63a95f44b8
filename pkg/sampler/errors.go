package sampler

import "fmt"

// ErrNegativeSampleSize is returned when a sample is requested with k < 0.
// It is the only error the sampler produces; an empty result is not one.
type ErrNegativeSampleSize struct {
	SampleSize int
}

func NewErrNegativeSampleSize(k int) ErrNegativeSampleSize {
	return ErrNegativeSampleSize{SampleSize: k}
}

func (e ErrNegativeSampleSize) Error() string {
	return fmt.Sprintf("sample size must be non-negative, got: %d", e.SampleSize)
}
