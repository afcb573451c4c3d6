// Package audio provides audio processing utilities.
//
// mulaw.go implements μ-law (G.711) audio codec conversions.
// μ-law is the standard audio encoding for telephone systems in North America and Japan.
//
// The sample functions here are the canonical implementation: every other
// conversion path in this repository (the lookup tables, the wrapped g711
// library) must produce byte-identical results.
//
// Reference: ITU-T G.711 specification

package audio

// μ-law codec constants.
const (
	MuLawBias = 0x84  // added to the magnitude before segment detection
	MuLawClip = 32635 // magnitude ceiling, keeps magnitude+bias inside 15 bits
)

// segMasks select the most significant set bit of the biased magnitude,
// scanned from the highest segment down.
var segMasks = [7]int{0x4000, 0x2000, 0x1000, 0x0800, 0x0400, 0x0200, 0x0100}

// ClampSample clamps an arbitrary integer to the 16-bit signed sample range.
// Out-of-range producers are tolerated, never rejected.
func ClampSample(v int) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

// EncodeSample converts a 16-bit signed PCM sample to a μ-law byte.
func EncodeSample(sample int16) byte {
	// Work in int: |-32768| does not fit in int16.
	m := int(sample)
	var sign byte
	if m < 0 {
		sign = 0x80
		m = -m
	}
	if m > MuLawClip {
		m = MuLawClip
	}
	m += MuLawBias

	segment := 7
	for _, mask := range segMasks {
		if m&mask != 0 {
			break
		}
		segment--
	}
	mantissa := byte(m>>(segment+3)) & 0x0F

	// The one's complement is part of the wire format, not an optimization.
	return ^(sign | byte(segment)<<4 | mantissa)
}

// DecodeSample converts a μ-law byte back to a 16-bit signed PCM sample.
func DecodeSample(code byte) int16 {
	code = ^code
	sign := code & 0x80
	segment := (code >> 4) & 0x07
	mantissa := code & 0x0F

	v := (int(mantissa)<<3 | 0x84) << segment
	v -= MuLawBias
	if sign != 0 {
		v = -v
	}
	return ClampSample(v)
}

// Encode converts PCM16 samples to μ-law, one byte per sample.
// A nil or empty input yields an empty output.
func Encode(pcm []int16) []byte {
	out := make([]byte, len(pcm))
	for i, s := range pcm {
		out[i] = EncodeSample(s)
	}
	return out
}

// Decode converts μ-law bytes to PCM16 samples, one sample per byte.
func Decode(mulaw []byte) []int16 {
	out := make([]int16, len(mulaw))
	for i, b := range mulaw {
		out[i] = DecodeSample(b)
	}
	return out
}
