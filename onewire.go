package firmata

// 1-Wire request sub-command bits, OR'd together into a single byte (spec
// §4.4 / onewire.md).
const (
	OneWireReset  byte = 0x01
	OneWireSkip   byte = 0x02
	OneWireSelect byte = 0x04
	OneWireRead   byte = 0x08
	OneWireDelay  byte = 0x10
	OneWireWrite  byte = 0x20
)

// 1-Wire reply sub-commands.
const (
	oneWireSearchReply       byte = 0x42
	oneWireReadReply         byte = 0x43
	oneWireSearchAlarmsReply byte = 0x45
)

// OneWireRequest describes a single 1-Wire transaction to encode.
type OneWireRequest struct {
	Pin       byte
	Reset     bool            // issue a bus reset before the rest of the transaction.
	Skip      bool            // address all devices on the bus (SKIP ROM) instead of Device.
	Device    *OneWireAddress // selected device; non-nil sets OneWireSelect.
	ReadCount int             // bytes to read; > 0 sets OneWireRead.
	DelayMS   uint32          // delay; > 0 sets OneWireDelay.
	Write     []byte          // bytes to write; non-empty sets OneWireWrite.
}

// subcmd derives the request's sub-command bitmask from which fields are
// populated.
func (r OneWireRequest) subcmd() byte {
	var b byte
	if r.Reset {
		b |= OneWireReset
	}
	if r.Skip {
		b |= OneWireSkip
	}
	if r.Device != nil {
		b |= OneWireSelect
	}
	if r.ReadCount > 0 {
		b |= OneWireRead
	}
	if r.DelayMS > 0 {
		b |= OneWireDelay
	}
	if len(r.Write) > 0 {
		b |= OneWireWrite
	}
	return b
}

// EncodeOneWireRequest builds a ONEWIRE_DATA request. The body is the
// concatenation, in fixed order, of the selected device (8 bytes), a
// 2-byte little-endian read count, a 2-byte little-endian correlation id
// (with the read count, every version except V_2_04), a 4-byte
// little-endian delay and the write bytes — each of those sections
// present only when the corresponding subcmd bit is set — then 7-bit
// packed as a whole.
func EncodeOneWireRequest(s *Session, req OneWireRequest, correlationID uint16) []byte {
	subcmd := req.subcmd()
	var body []byte
	if req.Device != nil {
		body = append(body, packOneWireAddress(*req.Device)...)
	}
	if req.ReadCount > 0 {
		body = append(body, byte(req.ReadCount), byte(req.ReadCount>>8))
		if s.version != V_2_04 {
			body = append(body, byte(correlationID), byte(correlationID>>8))
		}
	}
	if req.DelayMS > 0 {
		body = append(body,
			byte(req.DelayMS), byte(req.DelayMS>>8),
			byte(req.DelayMS>>16), byte(req.DelayMS>>24))
	}
	body = append(body, req.Write...)

	payload := make([]byte, 0, 2+len(body)*2)
	payload = append(payload, subcmd, req.Pin)
	payload = append(payload, pack7(body)...)
	return EncodeSysexCommand(s, "ONEWIRE_DATA", payload...)
}

// OneWireReadReply is a decoded READ_REPLY.
type OneWireReadReply struct {
	Device        OneWireAddress // populated only under V_2_04.
	CorrelationID uint16         // populated for every version except V_2_04.
	Data          []byte
}

// OneWireSearchReply is a decoded SEARCH_REPLY or SEARCH_ALARMS_REPLY.
type OneWireSearchReply struct {
	Alarms  bool
	Devices []OneWireAddress
}

// DecodeOneWireReply dispatches a ONEWIRE_DATA sub-command payload (the
// bytes after the ONEWIRE_DATA opcode) to a typed reply. version selects
// the READ_REPLY layout per spec §4.4: V_2_04 precedes the data with the
// 8-byte device address, every later version with a 2-byte correlation id.
func DecodeOneWireReply(version ProtocolVersion, body []byte) any {
	if len(body) == 0 {
		return UnknownSysex{Data: body}
	}
	sub := body[0]
	raw := unpack7(body[1:])
	switch sub {
	case oneWireReadReply:
		return parseOneWireReadReply(version, raw)
	case oneWireSearchReply:
		return OneWireSearchReply{Devices: parseOneWireAddressList(raw)}
	case oneWireSearchAlarmsReply:
		return OneWireSearchReply{Alarms: true, Devices: parseOneWireAddressList(raw)}
	default:
		return UnknownSysex{Opcode: sub, Data: body}
	}
}

func parseOneWireReadReply(version ProtocolVersion, raw []byte) OneWireReadReply {
	var r OneWireReadReply
	if version == V_2_04 {
		if len(raw) >= 8 {
			r.Device = unpackOneWireAddress(raw[:8])
			r.Data = raw[8:]
		}
		return r
	}
	if len(raw) >= 2 {
		r.CorrelationID = uint16(raw[0]) | uint16(raw[1])<<8
		r.Data = raw[2:]
	}
	return r
}

func parseOneWireAddressList(raw []byte) []OneWireAddress {
	var devices []OneWireAddress
	for i := 0; i+8 <= len(raw); i += 8 {
		devices = append(devices, unpackOneWireAddress(raw[i:i+8]))
	}
	return devices
}
