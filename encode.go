package firmata

// channelAddressed is the set of short-message names whose low nibble
// carries a channel (pin or port index) rather than being part of a
// fixed opcode.
var channelAddressed = map[string]bool{
	"DIGITAL_MESSAGE":     true,
	"ANALOG_MESSAGE":      true,
	"REPORT_ANALOG_PIN":   true,
	"REPORT_DIGITAL_PORT": true,
}

// EncodeShort builds a short MIDI-style message: a status byte (channel
// OR'd in for channel-addressed commands) followed by data bytes each
// masked to 7 bits. Returns nil for a command name unknown to, or not yet
// introduced in, the session's protocol version (spec §7: soft failure,
// caller checks).
func EncodeShort(s *Session, command string, channel byte, data ...byte) []byte {
	opcode, ok := lookupCommandOpcode(s.version, command)
	if !ok {
		return nil
	}
	status := opcode
	if channelAddressed[command] {
		status = opcode | (channel & 0x0F)
	}
	out := make([]byte, 0, 1+len(data))
	out = append(out, status)
	for _, b := range data {
		out = append(out, b&0x7F)
	}
	return out
}

// EncodeSysex wraps an already-built payload in a SysEx envelope.
func EncodeSysex(s *Session, payload ...byte) []byte {
	return wrapInSysex(payload)
}

// EncodeSysexCommand prefixes payload with command's opcode and wraps the
// result in a SysEx envelope. Returns nil for an unknown command name.
func EncodeSysexCommand(s *Session, command string, payload ...byte) []byte {
	opcode, ok := lookupCommandOpcode(s.version, command)
	if !ok {
		return nil
	}
	full := make([]byte, 0, 1+len(payload))
	full = append(full, opcode)
	full = append(full, payload...)
	return wrapInSysex(full)
}

// EncodeDigitalWrite builds a DIGITAL_MESSAGE for the given port number,
// setting the port's full 8-pin value. portValue's bits 0-7 map to the
// port's 8 pins; only bits 0-6 fit a single data byte so the value is
// split as a 14-bit pair.
func EncodeDigitalWrite(s *Session, port byte, portValue int) []byte {
	pair := encode14(portValue)
	return EncodeShort(s, "DIGITAL_MESSAGE", port, pair[0], pair[1])
}

// EncodeAnalogWrite builds an ANALOG_MESSAGE (PWM or analog) for pin.
func EncodeAnalogWrite(s *Session, pin byte, value int) []byte {
	pair := encode14(value)
	return EncodeShort(s, "ANALOG_MESSAGE", pin, pair[0], pair[1])
}

// EncodeReportAnalogPin toggles streaming of a single analog pin's value.
func EncodeReportAnalogPin(s *Session, pin byte, enabled bool) []byte {
	return EncodeShort(s, "REPORT_ANALOG_PIN", pin, boolToByte(enabled))
}

// EncodeReportDigitalPort toggles streaming of an 8-pin digital port.
func EncodeReportDigitalPort(s *Session, port byte, enabled bool) []byte {
	return EncodeShort(s, "REPORT_DIGITAL_PORT", port, boolToByte(enabled))
}

// EncodeSetPinMode sets pin's mode (INPUT, OUTPUT, ANALOG, PWM, SERVO,
// SHIFT, I2C, ...).
func EncodeSetPinMode(s *Session, pin, mode byte) []byte {
	return EncodeShort(s, "SET_PIN_MODE", 0, pin&0x7F, mode&0x7F)
}

// EncodeSetDigitalPinValue sets a single digital pin's value without
// touching the rest of its port.
func EncodeSetDigitalPinValue(s *Session, pin byte, value bool) []byte {
	return EncodeShort(s, "SET_DIGITAL_PIN_VALUE", 0, pin&0x7F, boolToByte(value))
}

// EncodeSystemReset builds a SYSTEM_RESET message.
func EncodeSystemReset(s *Session) []byte {
	return EncodeShort(s, "SYSTEM_RESET", 0)
}

// EncodeCapabilityQuery asks the device for every pin's supported modes
// and resolutions.
func EncodeCapabilityQuery(s *Session) []byte {
	return EncodeSysexCommand(s, "CAPABILITY_QUERY")
}

// EncodeAnalogMappingQuery asks for the analog-channel-to-pin mapping.
func EncodeAnalogMappingQuery(s *Session) []byte {
	return EncodeSysexCommand(s, "ANALOG_MAPPING_QUERY")
}

// EncodePinStateQuery asks for a single pin's current mode and value.
func EncodePinStateQuery(s *Session, pin byte) []byte {
	return EncodeSysexCommand(s, "PIN_STATE_QUERY", pin&0x7F)
}

// EncodeReportFirmwareQuery asks for the firmware name and version.
func EncodeReportFirmwareQuery(s *Session) []byte {
	return EncodeSysexCommand(s, "REPORT_FIRMWARE")
}

// EncodeSamplingInterval sets the poll rate, in milliseconds, of the
// device's main analog-sampling loop.
func EncodeSamplingInterval(s *Session, intervalMS int) []byte {
	pair := encode14(intervalMS)
	return EncodeSysexCommand(s, "SAMPLING_INTERVAL", pair[0], pair[1])
}

// EncodeStringData sends a host-to-device text message.
func EncodeStringData(s *Session, text string) []byte {
	return EncodeSysexCommand(s, "STRING_DATA", encodeDouble7([]byte(text))...)
}

// I2C request modes, carried in bits 3-4 of the I2C_REQUEST byte that
// follows the 7-bit address (see i2c.md).
const (
	I2CModeWrite          byte = 0
	I2CModeRead           byte = 1
	I2CModeContinuousRead byte = 2
	I2CModeStopReading    byte = 3
)

// EncodeI2CRequest builds an I2C_REQUEST for a 7-bit address. data is
// double-7-bit encoded and appended for every mode, read modes included.
func EncodeI2CRequest(s *Session, addr byte, mode byte, data []byte) []byte {
	payload := make([]byte, 0, 2+len(data)*2)
	payload = append(payload, addr&0x7F, (mode&0x03)<<3)
	payload = append(payload, encodeDouble7(data)...)
	return EncodeSysexCommand(s, "I2C_REQUEST", payload...)
}

// EncodeI2CConfig configures the I2C bus delay, in microseconds, before a
// repeated-start read.
func EncodeI2CConfig(s *Session, delayMicros int) []byte {
	pair := encode14(delayMicros)
	return EncodeSysexCommand(s, "I2C_CONFIG", pair[0], pair[1])
}
