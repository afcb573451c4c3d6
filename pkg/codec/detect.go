package codec

import (
	"bytes"

	"github.com/rtaudio/audiogate/pkg/audio"
)

// Detect probes which backends are usable in this process and returns them
// in preference order, most accelerated first, the reference implementation
// always last. A candidate is admitted only if a verification sweep proves
// it byte-identical to the reference; a divergent backend is dropped rather
// than trusted.
//
// The returned slice is freshly allocated and never mutated by this
// package; run Detect once at startup and treat the result as read-only.
func Detect() []Backend {
	candidates := []Backend{g711Backend(), tableBackend()}

	available := make([]Backend, 0, len(candidates)+1)
	for _, b := range candidates {
		if verify(b) {
			available = append(available, b)
		}
	}
	return append(available, ReferenceBackend())
}

// verify sweeps the full sample range through Encode and every possible
// byte through Decode, comparing against the canonical implementation.
func verify(b Backend) bool {
	pcm := make([]int16, 1<<16)
	for i := range pcm {
		pcm[i] = int16(uint16(i))
	}
	if !bytes.Equal(b.Encode(pcm), audio.Encode(pcm)) {
		return false
	}

	mulaw := make([]byte, 256)
	for i := range mulaw {
		mulaw[i] = byte(i)
	}
	got, want := b.Decode(mulaw), audio.Decode(mulaw)
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
