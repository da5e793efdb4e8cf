// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM. Values outside
// [-1,1] are clamped.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for both signs so the range stays symmetric
	return int16(x * 32767.0)
}

// PeakInt16 returns the largest absolute sample in samples, as 16-bit PCM.
func PeakInt16(samples []float32) int16 {
	var peak float32
	for _, s := range samples {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return Float32ToInt16(peak)
}
