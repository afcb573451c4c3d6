package audio

import (
	"errors"
	"fmt"
)

// ErrOddLength reports a byte payload that cannot hold whole PCM16 samples.
var ErrOddLength = errors.New("audio: odd-length PCM16 payload")

// BytesToPCM16 unpacks little-endian 16-bit samples from a byte payload.
// The payload must contain an even number of bytes.
func BytesToPCM16(data []byte) ([]int16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(data))
	}
	pcm := make([]int16, len(data)/2)
	for i := range pcm {
		pcm[i] = int16(data[i*2]) | int16(data[i*2+1])<<8
	}
	return pcm, nil
}

// PCM16ToBytes packs samples as little-endian 16-bit values.
func PCM16ToBytes(pcm []int16) []byte {
	data := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		data[i*2] = byte(s)
		data[i*2+1] = byte(s >> 8)
	}
	return data
}
