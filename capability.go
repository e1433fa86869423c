package firmata

// Pin modes, as reported in a CAPABILITY_RESPONSE and set with
// SET_PIN_MODE. Values match firmata.h's Pin_mode enum.
const (
	ModeInput  byte = 0
	ModeOutput byte = 1
	ModeAnalog byte = 2
	ModePWM    byte = 3
	ModeServo  byte = 4
	ModeShift  byte = 5
	ModeI2C    byte = 6
	ModeOneWire byte = 7
	ModeStepper byte = 8
	ModeEncoder byte = 9
	ModeSerial  byte = 10
	ModePullup  byte = 11
)

// PinModeString names a mode byte for logging; an unrecognized mode has
// no entry, so a lookup yields the empty string.
var PinModeString = map[byte]string{
	ModeInput:   "INPUT",
	ModeOutput:  "OUTPUT",
	ModeAnalog:  "ANALOG",
	ModePWM:     "PWM",
	ModeServo:   "SERVO",
	ModeShift:   "SHIFT",
	ModeI2C:     "I2C",
	ModeOneWire: "ONEWIRE",
	ModeStepper: "STEPPER",
	ModeEncoder: "ENCODER",
	ModeSerial:  "SERIAL",
	ModePullup:  "PULLUP",
}

const capabilitySentinel = 0x7F

// PinCapability is one pin's supported mode/resolution pairs, as reported
// by a CAPABILITY_RESPONSE.
type PinCapability struct {
	Mode       byte
	Resolution byte
}

// ParseCapabilityResponse splits a CAPABILITY_RESPONSE payload (the bytes
// after the sub-command opcode) into one capability list per pin. Each
// pin's run of (mode, resolution) pairs ends at the 0x7F sentinel; a
// malformed trailing run with no sentinel is still returned as a final
// pin entry.
func ParseCapabilityResponse(payload []byte) [][]PinCapability {
	var pins [][]PinCapability
	var cur []PinCapability
	for i := 0; i < len(payload); {
		b := payload[i]
		if b == capabilitySentinel {
			pins = append(pins, cur)
			cur = nil
			i++
			continue
		}
		if i+1 >= len(payload) {
			break
		}
		cur = append(cur, PinCapability{Mode: b, Resolution: payload[i+1]})
		i += 2
	}
	if len(cur) > 0 {
		pins = append(pins, cur)
	}
	return pins
}

// ParseAnalogMappingResponse maps each analog channel to the pin number
// that backs it, in ascending channel order. A 0x7F entry means the pin
// at that index has no analog channel and is skipped.
func ParseAnalogMappingResponse(payload []byte) map[byte]byte {
	out := map[byte]byte{}
	for pin, channel := range payload {
		if channel == capabilitySentinel {
			continue
		}
		out[channel] = byte(pin)
	}
	return out
}

// PinState is a decoded PIN_STATE_RESPONSE: a pin's current mode and its
// raw state value (meaning depends on mode — digital level, PWM duty,
// servo angle, ...).
type PinState struct {
	Pin      byte
	Mode     byte
	ModeName string
	State    int
}

// ParsePinStateResponse decodes a PIN_STATE_RESPONSE payload: pin, mode,
// then a variable-length LSB-first 7-bit little-endian state value.
func ParsePinStateResponse(payload []byte) (PinState, bool) {
	if len(payload) < 2 {
		return PinState{}, false
	}
	state := 0
	for i := len(payload) - 1; i >= 2; i-- {
		state = state<<7 | int(payload[i]&0x7F)
	}
	mode := payload[1]
	return PinState{
		Pin:      payload[0],
		Mode:     mode,
		ModeName: PinModeString[mode],
		State:    state,
	}, true
}
