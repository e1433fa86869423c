package firmata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSerialConfigWithPins(t *testing.T) {
	s := NewSession(V_2_06)
	msg := EncodeSerialConfig(s, 1, 9600, 10, 11, true)
	require.NotNil(t, msg)
	assert.Equal(t, byte(sysexSerialDataV1), msg[1])
	assert.Equal(t, serialConfig|1, msg[2])
	assert.Equal(t, byte(10), msg[len(msg)-3])
	assert.Equal(t, byte(11), msg[len(msg)-2])
}

func TestEncodeSerialWriteDoubleSevenEncodes(t *testing.T) {
	s := NewSession(V_2_06)
	msg := EncodeSerialWrite(s, 2, []byte{0xFF})
	require.NotNil(t, msg)
	assert.Equal(t, serialWrite|2, msg[2])
}

func TestEncodeSerialReadWithMaxBytes(t *testing.T) {
	s := NewSession(V_2_06)
	msg := EncodeSerialRead(s, 0, SerialReadContinuous, 64, true)
	require.NotNil(t, msg)
	pair := encode14(64)
	assert.Equal(t, pair[0], msg[len(msg)-3])
	assert.Equal(t, pair[1], msg[len(msg)-2])
}

func TestDecodeSerialReply(t *testing.T) {
	body := append([]byte{serialReply | 3}, encodeDouble7([]byte("hi"))...)
	got := DecodeSerialReply(body)
	reply, ok := got.(SerialReply)
	require.True(t, ok)
	assert.Equal(t, byte(3), reply.Port)
	assert.Equal(t, []byte("hi"), reply.Data)
}

func TestDecodeSerialReplyIgnoresNonReplyCommand(t *testing.T) {
	got := DecodeSerialReply([]byte{serialConfig | 1, 0x00})
	_, ok := got.(UnknownSysex)
	assert.True(t, ok)
}
