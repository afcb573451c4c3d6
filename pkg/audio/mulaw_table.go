package audio

// Table-driven μ-law conversion. Decoding uses a pre-computed 256-entry
// table; encoding uses a full 64K table filled once at package init from
// EncodeSample, so the table path cannot drift from the canonical
// algorithm.

// muLawDecodeTable maps each μ-law byte to its 16-bit signed PCM value.
var muLawDecodeTable = [256]int16{
	-32124, -31100, -30076, -29052, -28028, -27004, -25980, -24956,
	-23932, -22908, -21884, -20860, -19836, -18812, -17788, -16764,
	-15996, -15484, -14972, -14460, -13948, -13436, -12924, -12412,
	-11900, -11388, -10876, -10364, -9852, -9340, -8828, -8316,
	-7932, -7676, -7420, -7164, -6908, -6652, -6396, -6140,
	-5884, -5628, -5372, -5116, -4860, -4604, -4348, -4092,
	-3900, -3772, -3644, -3516, -3388, -3260, -3132, -3004,
	-2876, -2748, -2620, -2492, -2364, -2236, -2108, -1980,
	-1884, -1820, -1756, -1692, -1628, -1564, -1500, -1436,
	-1372, -1308, -1244, -1180, -1116, -1052, -988, -924,
	-876, -844, -812, -780, -748, -716, -684, -652,
	-620, -588, -556, -524, -492, -460, -428, -396,
	-372, -356, -340, -324, -308, -292, -276, -260,
	-244, -228, -212, -196, -180, -164, -148, -132,
	-120, -112, -104, -96, -88, -80, -72, -64,
	-56, -48, -40, -32, -24, -16, -8, 0,
	32124, 31100, 30076, 29052, 28028, 27004, 25980, 24956,
	23932, 22908, 21884, 20860, 19836, 18812, 17788, 16764,
	15996, 15484, 14972, 14460, 13948, 13436, 12924, 12412,
	11900, 11388, 10876, 10364, 9852, 9340, 8828, 8316,
	7932, 7676, 7420, 7164, 6908, 6652, 6396, 6140,
	5884, 5628, 5372, 5116, 4860, 4604, 4348, 4092,
	3900, 3772, 3644, 3516, 3388, 3260, 3132, 3004,
	2876, 2748, 2620, 2492, 2364, 2236, 2108, 1980,
	1884, 1820, 1756, 1692, 1628, 1564, 1500, 1436,
	1372, 1308, 1244, 1180, 1116, 1052, 988, 924,
	876, 844, 812, 780, 748, 716, 684, 652,
	620, 588, 556, 524, 492, 460, 428, 396,
	372, 356, 340, 324, 308, 292, 276, 260,
	244, 228, 212, 196, 180, 164, 148, 132,
	120, 112, 104, 96, 88, 80, 72, 64,
	56, 48, 40, 32, 24, 16, 8, 0,
}

// muLawEncodeTable maps uint16(sample) to its μ-law byte.
var muLawEncodeTable [65536]byte

func init() {
	for i := range muLawEncodeTable {
		muLawEncodeTable[i] = EncodeSample(int16(uint16(i)))
	}
}

// EncodeSampleTable is the table-driven equivalent of EncodeSample.
func EncodeSampleTable(sample int16) byte {
	return muLawEncodeTable[uint16(sample)]
}

// DecodeSampleTable is the table-driven equivalent of DecodeSample.
func DecodeSampleTable(code byte) int16 {
	return muLawDecodeTable[code]
}

// EncodeTable converts PCM16 samples to μ-law using the lookup table.
func EncodeTable(pcm []int16) []byte {
	out := make([]byte, len(pcm))
	for i, s := range pcm {
		out[i] = muLawEncodeTable[uint16(s)]
	}
	return out
}

// DecodeTable converts μ-law bytes to PCM16 using the lookup table.
func DecodeTable(mulaw []byte) []int16 {
	out := make([]int16, len(mulaw))
	for i, b := range mulaw {
		out[i] = muLawDecodeTable[b]
	}
	return out
}
