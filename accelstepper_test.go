package firmata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAccelStepperConfigRejectsBadDeviceID(t *testing.T) {
	s := NewSession(V_2_06)
	_, err := EncodeAccelStepperConfig(s, 10, AccelInterfaceDriver, 0, AccelStepperPins{})
	require.Error(t, err)
	var argErr *ArgumentError
	assert.ErrorAs(t, err, &argErr)
}

func TestEncodeAccelStepperConfigPacksInterfaceByte(t *testing.T) {
	s := NewSession(V_2_06)
	msg, err := EncodeAccelStepperConfig(s, 1, AccelInterfaceFourWire, 1, AccelStepperPins{
		Pin1: 2, Pin2: 3, Pin3: 4, HasPin3: true, Pin4: 5, HasPin4: true,
	})
	require.NoError(t, err)
	// envelope(2) + opcode(1) + accelConfig,device,iface(3) + 4 pins + invertMask(1)
	assert.Equal(t, 2+1+3+4+1, len(msg))
	// iface = FOUR_WIRE(4)<<4 | step(1)<<1 | no enable pin
	assert.Equal(t, byte(0x42), msg[4])
}

func TestEncodeAccelStepperStepIsNotDecodedAsReply(t *testing.T) {
	s := NewSession(V_2_06)
	msg, err := EncodeAccelStepperStep(s, 2, -12345)
	require.NoError(t, err)
	payload := msg[1 : len(msg)-1]
	decoded := DecodeSysex(s, payload)
	pos, ok := decoded.(AccelStepperPosition)
	assert.False(t, ok, "STEP is request-only, DecodeSysex only parses replies")
	_ = pos
}

func TestEncodeAccelStepperMultiMoveRejectsOversizedGroup(t *testing.T) {
	s := NewSession(V_2_06)
	positions := make([]int32, 11)
	_, err := EncodeAccelStepperMultiMove(s, 0, positions)
	require.Error(t, err)
}

func TestDecodeAccelStepperMoveComplete(t *testing.T) {
	body := append([]byte{accelMoveComplete, 3}, encode32(-12345)...)
	got := DecodeAccelStepperReply(body)
	pos, ok := got.(AccelStepperPosition)
	require.True(t, ok)
	assert.Equal(t, byte(3), pos.DeviceID)
	assert.Equal(t, int32(-12345), pos.Position)
}

func TestDecodeAccelStepperMultiMoveComplete(t *testing.T) {
	got := DecodeAccelStepperReply([]byte{accelMultiMoveComplete, 2})
	mmc, ok := got.(AccelStepperMultiMoveComplete)
	require.True(t, ok)
	assert.Equal(t, byte(2), mmc.Group)
}

func TestEncodeAccelStepperSpeedEncodesFloat(t *testing.T) {
	s := NewSession(V_2_06)
	msg, err := EncodeAccelStepperSpeed(s, 4, 500)
	require.NoError(t, err)
	assert.Equal(t, 2+1+2+4, len(msg))
}
