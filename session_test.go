package firmata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDecodeShortMessage(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0x90, 0x01, 0x00})
	require.Len(t, packets, 1)
	assert.Equal(t, "DIGITAL_MESSAGE", packets[0].Name)
	assert.Equal(t, []byte{0x01, 0x00}, packets[0].Data)
}

func TestSessionDecodePartialMessageBuffers(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0x90, 0x01})
	assert.Empty(t, packets)

	packets = s.Decode([]byte{0x00})
	require.Len(t, packets, 1)
	assert.Equal(t, "DIGITAL_MESSAGE", packets[0].Name)
}

func TestSessionDecodeSysexEnvelope(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0xF0, 0x71, 'h', 'i', 0xF7})
	require.Len(t, packets, 3)
	assert.Equal(t, "START_SYSEX", packets[0].Name)
	assert.Equal(t, "DATA_SYSEX", packets[1].Name)
	assert.Equal(t, []byte{0x71, 'h', 'i'}, packets[1].Data)
	assert.Equal(t, "END_SYSEX", packets[2].Name)
}

func TestSessionDecodeAccumulatesDataSysexWithinOneCall(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0xF0, 0x71, 'a', 'b', 'c', 0xF7})
	require.Len(t, packets, 3)
	assert.Equal(t, []byte{0x71, 'a', 'b', 'c'}, packets[1].Data)
}

func TestSessionDecodeDoesNotAccumulateAcrossCalls(t *testing.T) {
	s := NewSession(V_2_06)
	first := s.Decode([]byte{0xF0, 0x71, 'a', 'b'})
	second := s.Decode([]byte{'c', 0xF7})

	require.Len(t, first, 2)
	assert.Equal(t, []byte{0x71, 'a', 'b'}, first[1].Data)

	require.Len(t, second, 2)
	assert.Equal(t, []byte{'c'}, second[0].Data)
	assert.Equal(t, "END_SYSEX", second[1].Name)
}

func TestSessionDecodeShortMessageInterruptsSysex(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0xF0, 0x71, 'a', 0x90, 0x01, 0x00, 'b', 0xF7})
	require.Len(t, packets, 5)
	assert.Equal(t, "START_SYSEX", packets[0].Name)
	assert.Equal(t, []byte{0x71, 'a'}, packets[1].Data)
	assert.Equal(t, "DIGITAL_MESSAGE", packets[2].Name)
	assert.Equal(t, "DATA_SYSEX", packets[3].Name)
	assert.Equal(t, []byte{'b'}, packets[3].Data)
}

func TestSessionDecodeDropsStrayDataByteInNormalMode(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0x05, 0x90, 0x01, 0x00})
	require.Len(t, packets, 1)
	assert.Equal(t, "DIGITAL_MESSAGE", packets[0].Name)
}

func TestSessionDecodeReportVersion(t *testing.T) {
	s := NewSession(V_2_06)
	packets := s.Decode([]byte{0xF9, 0x02, 0x06})
	require.Len(t, packets, 1)
	assert.Equal(t, "REPORT_VERSION", packets[0].Name)
	assert.Equal(t, []byte{0x02, 0x06}, packets[0].Data)
}

func TestSessionDiagnosticsHookOptional(t *testing.T) {
	s := NewSession(V_2_06)
	var got string
	s.SetDiagnostics(func(msg string, args ...any) { got = msg })
	s.logf("hello %d", 1)
	assert.Equal(t, "hello %d", got)
}
