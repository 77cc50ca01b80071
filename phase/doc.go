// Package phase decodes phase-estimation measurement records into
// numeric phases and candidate singular-value grids.
//
// A measurement outcome is a bit string over the precision register. The
// pipeline here is small and pure:
//
//	counts → RankByCount → BinaryFraction → ConvertMeasured → θ ∈ (−1/2, 1/2]
//
// BinaryFraction reads a bit string as a dyadic fraction in [0, 1) under
// an explicit Endianness; ConvertMeasured folds the upper half of that
// interval to negative phases, matching the two's-complement readout of
// phase estimation on a real operator. PossibleEstimatedSingularValues
// enumerates the cos(πk/2^p) grid a p-bit register can resolve, and
// HasValueCloseTo checks a decoded set against reference values within a
// tolerance.
//
// Everything in this package is deterministic and allocation-light; the
// heavier spectral machinery lives in package estimator.
package phase
