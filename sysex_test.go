package firmata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSysexReportFirmware(t *testing.T) {
	s := NewSession(V_2_06)
	body := append([]byte{sysexReportFirmware, 2, 6}, encodeDouble7([]byte("Test"))...)
	got := DecodeSysex(s, body)
	fw, ok := got.(ReportFirmware)
	require.True(t, ok)
	assert.Equal(t, byte(2), fw.Major)
	assert.Equal(t, byte(6), fw.Minor)
	assert.Equal(t, "Test", fw.Name)
}

func TestDecodeSysexCapabilityResponse(t *testing.T) {
	s := NewSession(V_2_06)
	body := []byte{sysexCapabilityReply,
		ModeInput, 1, ModeOutput, 1, capabilitySentinel,
		ModeAnalog, 10, capabilitySentinel,
	}
	got := DecodeSysex(s, body)
	pins, ok := got.([][]PinCapability)
	require.True(t, ok)
	require.Len(t, pins, 2)
	assert.Equal(t, []PinCapability{{ModeInput, 1}, {ModeOutput, 1}}, pins[0])
	assert.Equal(t, []PinCapability{{ModeAnalog, 10}}, pins[1])
}

func TestDecodeSysexAnalogMappingResponse(t *testing.T) {
	s := NewSession(V_2_06)
	body := []byte{sysexAnalogMapReply, 0x7F, 0x7F, 0x00, 0x01}
	got := DecodeSysex(s, body)
	mapping, ok := got.(map[byte]byte)
	require.True(t, ok)
	assert.Equal(t, byte(2), mapping[0])
	assert.Equal(t, byte(3), mapping[1])
}

func TestDecodeSysexPinStateResponse(t *testing.T) {
	s := NewSession(V_2_06)
	body := []byte{sysexPinStateReply, 5, ModeOutput, 0x01}
	got := DecodeSysex(s, body)
	ps, ok := got.(PinState)
	require.True(t, ok)
	assert.Equal(t, byte(5), ps.Pin)
	assert.Equal(t, ModeOutput, ps.Mode)
	assert.Equal(t, 1, ps.State)
}

func TestDecodeSysexI2CReply(t *testing.T) {
	s := NewSession(V_2_06)
	addr := encode14(0x40)
	reg := encode14(0x10)
	d0 := encode14(0xAB)
	body := append([]byte{sysexI2CReply}, addr[0], addr[1])
	body = append(body, reg[0], reg[1])
	body = append(body, d0[0], d0[1])
	got := DecodeSysex(s, body)
	reply, ok := got.(I2CReply)
	require.True(t, ok)
	assert.Equal(t, 0x40, reply.Address)
	assert.Equal(t, 0x10, reply.Register)
	assert.Equal(t, []int{0xAB}, reply.Data)
}

func TestDecodeSysexUnknownSubCommand(t *testing.T) {
	s := NewSession(V_2_06)
	got := DecodeSysex(s, []byte{0x50, 0xAA})
	unk, ok := got.(UnknownSysex)
	require.True(t, ok)
	assert.Equal(t, []byte{0x50, 0xAA}, unk.Data)
}

func TestDecodeSysexReservedCommandPassesThrough(t *testing.T) {
	s := NewSession(V_2_06)
	got := DecodeSysex(s, []byte{0x00, 0x11, 0x22})
	res, ok := got.(ReservedCommand)
	require.True(t, ok)
	assert.Equal(t, []byte{0x11, 0x22}, res.Data)
}

func TestDecodeSysexEmptyPayload(t *testing.T) {
	s := NewSession(V_2_06)
	got := DecodeSysex(s, nil)
	_, ok := got.(UnknownSysex)
	assert.True(t, ok)
}
