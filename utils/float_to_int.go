// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// fullScale is the magnitude of a full-scale engine sample (2^31).
const fullScale = 2147483648.0

// Float32ToSample scales x in [-1,1] to a full-scale 32-bit sample.
// Out of range values are clamped.
func Float32ToSample(x float32) int32 {
	v := float64(x) * fullScale
	if v >= math.MaxInt32 {
		return math.MaxInt32
	}
	if v <= math.MinInt32 {
		return math.MinInt32
	}

	return int32(v)
}

// IntToSample left-justifies a signed codec value of the given bit depth
// into a 32-bit sample. Depths outside 1..32 are treated as 32.
func IntToSample(v int, bitDepth int) int32 {
	if bitDepth <= 0 || bitDepth >= 32 {
		return int32(v)
	}

	return int32(v) << (32 - bitDepth)
}

// SampleToInt is the inverse of IntToSample. The low bits that do not fit
// into bitDepth are truncated.
func SampleToInt(s int32, bitDepth int) int {
	if bitDepth <= 0 || bitDepth >= 32 {
		return int(s)
	}

	return int(s >> (32 - bitDepth))
}

