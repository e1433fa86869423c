package firmata

// StringData is a decoded STRING_DATA payload.
type StringData struct {
	Text string
}

// ReportFirmware is a decoded REPORT_FIRMWARE reply.
type ReportFirmware struct {
	Major byte
	Minor byte
	Name  string
}

// I2CReply is a decoded I2C_REPLY payload.
type I2CReply struct {
	Address  int
	Register int
	Data     []int
}

// ReservedCommand passes a user-defined feature code's payload through
// unparsed.
type ReservedCommand struct {
	Opcode byte
	Data   []byte
}

// UnknownSysex is returned for a sub-command this package's selected
// version doesn't recognize; Data is the full payload including the
// sub-command byte.
type UnknownSysex struct {
	Opcode byte
	Data   []byte
}

// DecodeSysex dispatches a reassembled SysEx payload (the bytes between
// START_SYSEX and END_SYSEX, sub-command first) to a typed record per
// spec §4.3. It returns one of: StringData, ReportFirmware,
// [][]PinCapability (CAPABILITY_RESPONSE), map[byte]byte
// (ANALOG_MAPPING_RESPONSE), PinState, I2CReply,
// a feature-specific record from onewire.go/scheduler.go/stepper.go/
// accelstepper.go/encoder.go/serialfeature.go, ReservedCommand, or
// UnknownSysex.
func DecodeSysex(s *Session, payload []byte) any {
	if len(payload) == 0 {
		return UnknownSysex{Data: payload}
	}
	op := payload[0]
	body := payload[1:]
	name, ok := lookupOpcodeName(s.version, op)
	if !ok {
		return UnknownSysex{Opcode: op, Data: payload}
	}
	switch name {
	case "STRING_DATA":
		return StringData{Text: string(decodeDouble7(body))}
	case "REPORT_FIRMWARE":
		if len(body) < 2 {
			return ReportFirmware{}
		}
		return ReportFirmware{Major: body[0], Minor: body[1], Name: string(decodeDouble7(body[2:]))}
	case "CAPABILITY_RESPONSE":
		return ParseCapabilityResponse(body)
	case "ANALOG_MAPPING_RESPONSE":
		return ParseAnalogMappingResponse(body)
	case "PIN_STATE_RESPONSE":
		state, _ := ParsePinStateResponse(body)
		return state
	case "I2C_REPLY":
		return decodeI2CReply(body)
	case "ONEWIRE_DATA":
		return DecodeOneWireReply(s.version, body)
	case "SCHEDULER_DATA":
		return DecodeSchedulerReply(body)
	case "STEPPER_DATA":
		return DecodeStepperReply(body)
	case "ACCELSTEPPER_DATA":
		return DecodeAccelStepperReply(body)
	case "ENCODER_DATA":
		return DecodeEncoderReply(body)
	case "SERIAL_DATA", "SERIAL_DATA_V2":
		return DecodeSerialReply(body)
	case "RESERVED_COMMAND":
		return ReservedCommand{Opcode: op, Data: body}
	default:
		return UnknownSysex{Opcode: op, Data: payload}
	}
}

// decodeI2CReply parses {address, register, data...} as 14-bit pairs.
func decodeI2CReply(body []byte) I2CReply {
	var r I2CReply
	if addr, ok := decode14(take(body, 0)); ok {
		r.Address = addr
	}
	if len(body) < 4 {
		return r
	}
	if reg, ok := decode14(body[2:4]); ok {
		r.Register = reg
	}
	for i := 4; i+1 < len(body); i += 2 {
		if v, ok := decode14(body[i : i+2]); ok {
			r.Data = append(r.Data, v)
		}
	}
	return r
}

// take returns body[off:off+2], or a shorter slice if body isn't long
// enough, so decode14's partial-read behavior still applies.
func take(body []byte, off int) []byte {
	if off >= len(body) {
		return nil
	}
	end := off + 2
	if end > len(body) {
		end = len(body)
	}
	return body[off:end]
}
