// Package codec selects among interchangeable μ-law codec implementations.
//
// Every backend converts between PCM16 samples and μ-law bytes with output
// byte-identical to the canonical implementation in pkg/audio. Selection
// only ever decides which implementation runs, never what it produces.
package codec

// EncodeFunc converts PCM16 samples to μ-law bytes, one byte per sample.
type EncodeFunc func(pcm []int16) []byte

// DecodeFunc converts μ-law bytes to PCM16 samples, one sample per byte.
type DecodeFunc func(mulaw []byte) []int16

// Backend is one concrete encode/decode implementation pair.
type Backend struct {
	Name   string
	Encode EncodeFunc
	Decode DecodeFunc
}

// Canonical backend tags, most accelerated first.
const (
	NameG711      = "g711"      // wrapped github.com/zaf/g711 implementation
	NameTable     = "table"     // lookup-table implementation
	NameReference = "reference" // canonical pure-Go implementation
)
