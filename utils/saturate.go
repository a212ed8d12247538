// SPDX-License-Identifier: EPL-2.0

package utils

// ClampInt16 converts x to an int16 sample, clamping to the
// representable range instead of wrapping.
func ClampInt16(x float32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}

	return int16(x)
}

// SaturatingAddInt16 adds two samples and clamps the sum to the int16
// range. Sounds mixed near full scale overflow plain addition; clamping
// clips instead of wrapping.
func SaturatingAddInt16(a, b int16) int16 {
	sum := int32(a) + int32(b)
	if sum > 32767 {
		return 32767
	}
	if sum < -32768 {
		return -32768
	}

	return int16(sum)
}
