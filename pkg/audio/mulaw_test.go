package audio

import (
	"bytes"
	"testing"
)

func TestEncodeKnownVectors(t *testing.T) {
	// Classic G.711 vectors: silence encodes to 0xFF, full scale to the
	// inverted sign/segment/mantissa extremes.
	vectors := []struct {
		sample int16
		want   byte
	}{
		{0, 0xFF},
		{32767, 0x80},
		{-32768, 0x00},
	}

	for _, v := range vectors {
		if got := EncodeSample(v.sample); got != v.want {
			t.Errorf("EncodeSample(%d) = %#02x, want %#02x", v.sample, got, v.want)
		}
	}
}

func TestDecodeKnownVectors(t *testing.T) {
	// 0x7F and 0xFF are the two zero codes.
	if got := DecodeSample(0x7F); got != 0 {
		t.Errorf("DecodeSample(0x7F) = %d, want 0", got)
	}
	if got := DecodeSample(0xFF); got != 0 {
		t.Errorf("DecodeSample(0xFF) = %d, want 0", got)
	}
	if got := DecodeSample(0x00); got >= 0 {
		t.Errorf("DecodeSample(0x00) = %d, want negative full scale", got)
	}
	if got := DecodeSample(0x80); got <= 0 {
		t.Errorf("DecodeSample(0x80) = %d, want positive full scale", got)
	}
}

func TestRoundTripSilence(t *testing.T) {
	decoded := Decode(Encode([]int16{0, 0, 0}))
	for _, v := range decoded {
		if v < -100 || v > 100 {
			t.Errorf("silent sample decoded to %d, expected near 0", v)
		}
	}
}

func TestRoundTripFullScale(t *testing.T) {
	for _, original := range []int16{32767, -32768} {
		decoded := DecodeSample(EncodeSample(original))
		diff := int(original) - int(decoded)
		if diff < 0 {
			diff = -diff
		}
		// 2% of full scale
		if diff > 655 {
			t.Errorf("full scale %d round-tripped to %d (diff %d)", original, decoded, diff)
		}
	}
}

func TestRoundTripErrorBound(t *testing.T) {
	// Quantization error grows with magnitude: within each segment the
	// step doubles. Exhaustively check max(5% of |v|, 200) over the whole
	// sample range.
	for i := 0; i < 1<<16; i++ {
		v := int16(uint16(i))
		decoded := DecodeSample(EncodeSample(v))

		diff := int(v) - int(decoded)
		if diff < 0 {
			diff = -diff
		}
		tolerance := int(v)
		if tolerance < 0 {
			tolerance = -tolerance
		}
		tolerance = tolerance * 5 / 100
		if tolerance < 200 {
			tolerance = 200
		}
		if diff > tolerance {
			t.Fatalf("sample %d round-tripped to %d, error %d > %d", v, decoded, diff, tolerance)
		}
	}
}

func TestClampSample(t *testing.T) {
	cases := []struct {
		in   int
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{100000, 32767},
		{-32768, -32768},
		{-32769, -32768},
		{-100000, -32768},
	}
	for _, c := range cases {
		if got := ClampSample(c.in); got != c.want {
			t.Errorf("ClampSample(%d) = %d, want %d", c.in, got, c.want)
		}
	}

	// Anything clamped above full scale must encode like full scale.
	if EncodeSample(ClampSample(99999)) != EncodeSample(32767) {
		t.Error("clamped over-range value should encode like 32767")
	}
	if EncodeSample(ClampSample(-99999)) != EncodeSample(-32768) {
		t.Error("clamped under-range value should encode like -32768")
	}
}

func TestEncodeDeterministic(t *testing.T) {
	samples := []int16{0, 1, -1, 1000, -1000, 12345, -12345, 32767, -32768}
	first := Encode(samples)
	second := Encode(samples)
	if !bytes.Equal(first, second) {
		t.Errorf("Encode not deterministic: %x vs %x", first, second)
	}
}

func TestLengthPreservation(t *testing.T) {
	samples := []int16{100, 200, 300, 400, 500}
	encoded := Encode(samples)
	if len(encoded) != len(samples) {
		t.Errorf("expected %d bytes, got %d", len(samples), len(encoded))
	}
	decoded := Decode(encoded)
	if len(decoded) != len(encoded) {
		t.Errorf("expected %d samples, got %d", len(encoded), len(decoded))
	}
}

func TestEmptyInput(t *testing.T) {
	if got := Encode(nil); len(got) != 0 {
		t.Errorf("Encode(nil) = %v, want empty", got)
	}
	if got := Encode([]int16{}); len(got) != 0 {
		t.Errorf("Encode([]) = %v, want empty", got)
	}
	if got := Decode(nil); len(got) != 0 {
		t.Errorf("Decode(nil) = %v, want empty", got)
	}
	if got := Decode([]byte{}); len(got) != 0 {
		t.Errorf("Decode([]) = %v, want empty", got)
	}
}

func TestTableMatchesReferenceEncode(t *testing.T) {
	for i := 0; i < 1<<16; i++ {
		s := int16(uint16(i))
		if got, want := EncodeSampleTable(s), EncodeSample(s); got != want {
			t.Fatalf("EncodeSampleTable(%d) = %#02x, reference %#02x", s, got, want)
		}
	}
}

func TestTableMatchesReferenceDecode(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		if got, want := DecodeSampleTable(b), DecodeSample(b); got != want {
			t.Fatalf("DecodeSampleTable(%#02x) = %d, reference %d", b, got, want)
		}
	}
}

func TestTableSliceConversions(t *testing.T) {
	samples := []int16{0, 8000, -8000, 16000, -16000, 32767, -32768}
	if !bytes.Equal(EncodeTable(samples), Encode(samples)) {
		t.Error("EncodeTable diverges from Encode")
	}

	mulaw := Encode(samples)
	got := DecodeTable(mulaw)
	want := Decode(mulaw)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DecodeTable[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	pcm := make([]int16, 8000) // 1 second at 8kHz
	for i := range pcm {
		pcm[i] = int16(i * 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(pcm)
	}
}

func BenchmarkEncodeTable(b *testing.B) {
	pcm := make([]int16, 8000)
	for i := range pcm {
		pcm[i] = int16(i * 10)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeTable(pcm)
	}
}

func BenchmarkDecode(b *testing.B) {
	mulaw := make([]byte, 8000)
	for i := range mulaw {
		mulaw[i] = byte(i % 256)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Decode(mulaw)
	}
}

func BenchmarkDecodeTable(b *testing.B) {
	mulaw := make([]byte, 8000)
	for i := range mulaw {
		mulaw[i] = byte(i % 256)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = DecodeTable(mulaw)
	}
}
