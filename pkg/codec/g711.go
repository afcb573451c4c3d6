package codec

import (
	"github.com/zaf/g711"

	"github.com/rtaudio/audiogate/pkg/audio"
)

// g711Encode converts samples through the zaf/g711 library.
//
// The library derives a negative sample's magnitude from its one's
// complement, which is one short of the two's-complement magnitude the
// canonical encoder uses and picks the lower code at every quantization
// slot boundary. Shifting negatives down by one before the call restores
// the canonical magnitude. Samples whose magnitude is at or past the clip
// ceiling all emit the clip code, so they are pinned to a value that stays
// in range under either magnitude convention.
func g711Encode(pcm []int16) []byte {
	out := make([]byte, len(pcm))
	for i, s := range pcm {
		if s < 0 {
			if s <= -(audio.MuLawClip + 1) {
				s = -(audio.MuLawClip + 2)
			} else {
				s--
			}
		}
		out[i] = g711.EncodeUlawFrame(s)
	}
	return out
}

func g711Decode(mulaw []byte) []int16 {
	out := make([]int16, len(mulaw))
	for i, b := range mulaw {
		out[i] = g711.DecodeUlawFrame(b)
	}
	return out
}

func g711Backend() Backend {
	return Backend{Name: NameG711, Encode: g711Encode, Decode: g711Decode}
}

func tableBackend() Backend {
	return Backend{Name: NameTable, Encode: audio.EncodeTable, Decode: audio.DecodeTable}
}

// ReferenceBackend returns the canonical implementation. It is always
// usable and always the final fallback.
func ReferenceBackend() Backend {
	return Backend{Name: NameReference, Encode: audio.Encode, Decode: audio.Decode}
}
