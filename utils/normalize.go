// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// snapEpsilon is the distance from an integer under which a scaled float is
// treated as that integer before truncation. Division followed by
// multiplication by the same divisor may land one ulp below the original
// value, and truncation would then lose a whole step.
const snapEpsilon = 1e-6

// SampleWidth returns the container width in bytes for a bit depth.
func SampleWidth(bitDepth int) int {
	return (bitDepth + 7) / 8
}

// Divisor returns 2^(bitDepth-1) - 1, the full-scale positive value of a
// signed sample with the given bit depth. 16 → 32767, 32 → 2147483647.
func Divisor(bitDepth int) float64 {
	if bitDepth < 2 {
		return 1
	}

	return float64(int64(1)<<(bitDepth-1) - 1)
}

// Normalize maps a signed PCM sample to a float in approximately [-1, 1].
func Normalize(sample, bitDepth int) float64 {
	return float64(sample) / Divisor(bitDepth)
}

// Denormalize32 maps a normalized float back to a 32-bit PCM sample,
// truncating toward zero. The output is always 32-bit, whatever depth the
// value was normalized from.
//
// Values beyond the int32 range clamp to its bounds and NaN maps to 0.
func Denormalize32(x float64) int32 {
	if math.IsNaN(x) {
		return 0
	}

	p := x * math.MaxInt32
	if r := math.Round(p); math.Abs(p-r) < snapEpsilon {
		p = r
	}

	p = math.Trunc(p)

	if p > math.MaxInt32 {
		return math.MaxInt32
	}

	if p < math.MinInt32 {
		return math.MinInt32
	}

	return int32(p)
}
