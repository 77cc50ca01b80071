// SPDX-License-Identifier: MIT

package estimator

// Default estimation parameters, used when no option overrides them.
const (
	// DefaultPrecisionBits is the precision-register width.
	DefaultPrecisionBits = 3

	// DefaultShots is the number of repeated trials per estimation.
	DefaultShots = 10000
)

// Option adjusts one estimation parameter. Options apply in order;
// the last writer wins.
type Option func(*options)

type options struct {
	precisionBits int
	shots         int
	topCount      int
	vector        []float64
}

// WithPrecisionBits sets the precision-register width p. Each extra bit
// halves MaxError.
func WithPrecisionBits(p int) Option {
	return func(o *options) { o.precisionBits = p }
}

// WithShots sets the number of repeated trials.
func WithShots(n int) Option {
	return func(o *options) { o.shots = n }
}

// WithTopCount sets how many distinct singular values to decode from the
// ranked outcomes. Zero (the default) decodes the top half.
func WithTopCount(n int) Option {
	return func(o *options) { o.topCount = n }
}

// WithSingularVector sets an initial guess for a right singular vector.
// The estimation state becomes the norm-isometry embedding of the guess,
// concentrating measurement mass on the matching singular value. Without
// it the engine uses the uniform superposition over columns.
func WithSingularVector(v []float64) Option {
	return func(o *options) { o.vector = append([]float64(nil), v...) }
}

func gatherOptions(opts ...Option) options {
	o := options{
		precisionBits: DefaultPrecisionBits,
		shots:         DefaultShots,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
