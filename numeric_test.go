package firmata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode14RoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 127, 128, 8191, 16383} {
		pair := encode14(v)
		got, ok := decode14(pair[:])
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
}

func TestDecode14PartialByte(t *testing.T) {
	got, ok := decode14([]byte{0x05})
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

func TestDecode14Empty(t *testing.T) {
	_, ok := decode14(nil)
	assert.False(t, ok)
}

func TestDoubleSevenRoundTrip(t *testing.T) {
	in := []byte("hello, firmata")
	assert.Equal(t, in, decodeDouble7(encodeDouble7(in)))
}

func TestPack7Unpack7WorkedExample(t *testing.T) {
	packed := pack7([]byte{0xFF, 0xFF})
	unpacked := unpack7(packed)
	assert.Equal(t, []byte{0xFF, 0xFF, 0x00}, unpacked)
}

func TestPack7Unpack7RoundTripsUpToTrailingZero(t *testing.T) {
	cases := [][]byte{
		{0x00},
		{0x01, 0x02, 0x03},
		{0xFF, 0x00, 0xAB, 0xCD, 0xEF},
	}
	for _, in := range cases {
		out := unpack7(pack7(in))
		assert.True(t, len(out) >= len(in))
		assert.Equal(t, in, out[:len(in)])
		for _, b := range out[len(in):] {
			assert.Zero(t, b)
		}
	}
}

func TestPack7EmptyIsNil(t *testing.T) {
	assert.Nil(t, pack7(nil))
	assert.Nil(t, unpack7(nil))
}

func TestEncode32DecodeWorkedExample(t *testing.T) {
	enc := encode32(-1)
	assert.Equal(t, []byte{0x7F, 0x7F, 0x7F, 0x7F, 0x0F}, enc)
	assert.Equal(t, int32(-1), decode32(enc))
}

func TestEncode32DecodeRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 1000, -1000, math.MaxInt32, math.MinInt32}
	for _, v := range values {
		assert.Equal(t, v, decode32(encode32(v)))
	}
}

func TestEncodeDecodeFloatRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 100, 1000.5, -2500}
	for _, v := range values {
		got := decodeFloat(encodeFloat(v))
		assert.InDelta(t, v, got, math.Max(1, math.Abs(v))*0.01)
	}
}

func TestPackUnpackOneWireAddress(t *testing.T) {
	addr := OneWireAddress{
		Family:   0x28,
		Identity: [6]byte{1, 2, 3, 4, 5, 6},
		CRC:      0x99,
	}
	raw := packOneWireAddress(addr)
	assert.Equal(t, addr, unpackOneWireAddress(raw))
}
