package firmata

// sessionMode is the parser's two-state machine: NORMAL reads short
// channel messages and status-only messages; INSIDE_SYSEX additionally
// accumulates data bytes into a SysEx payload until 0xF7 closes it.
type sessionMode int

const (
	modeNormal sessionMode = iota
	modeInsideSysex
)

// Session owns one Firmata parser's buffered, not-yet-consumed bytes and
// the protocol version used to name decoded packets and gate which
// request builders will emit bytes. A Session is single-threaded and
// non-suspending (spec §5): no two goroutines may drive the same Session
// concurrently, though independent Sessions need no coordination.
type Session struct {
	version     ProtocolVersion
	mode        sessionMode
	buf         []byte
	diagnostics func(msg string, args ...any)
}

// NewSession creates a Session pinned to the given protocol version. Pass
// an empty ProtocolVersion to default to the highest version this package
// implements.
func NewSession(version ProtocolVersion) *Session {
	if version == "" {
		version = latestVersion
	}
	return &Session{version: version}
}

// Version reports the session's negotiated protocol version.
func (s *Session) Version() ProtocolVersion {
	return s.version
}

// SetVersion changes the vocabulary used for naming decoded packets and
// gating request builders. It does not affect bytes already buffered.
func (s *Session) SetVersion(v ProtocolVersion) {
	s.version = v
}

// SetDiagnostics installs a logging hook for non-fatal codec diagnostics
// (currently: Decode dropping a stray data byte in NORMAL mode). The hook
// is optional, so a library caller isn't forced to see them.
func (s *Session) SetDiagnostics(fn func(msg string, args ...any)) {
	s.diagnostics = fn
}

func (s *Session) logf(msg string, args ...any) {
	if s.diagnostics != nil {
		s.diagnostics(msg, args...)
	}
}

// Decode appends data to the session's buffer and drains as many complete
// packets as the buffer allows. Partial packets remain buffered for the
// next call. Feeding the same overall byte stream in different chunk
// sizes yields the same flat packet sequence, with one carved-out
// exception: a SysEx payload's DATA_SYSEX accumulator is only merged
// within a single Decode call (spec §4.3 describes the raw parser as
// emitting "fragmented DATA_SYSEX" for an upstream collector to
// reassemble) — a payload split across two Decode calls yields two
// DATA_SYSEX packets, not one.
func (s *Session) Decode(data []byte) []Packet {
	s.buf = append(s.buf, data...)

	var packets []Packet
	for len(s.buf) > 0 {
		b := s.buf[0]
		switch {
		case s.mode == modeNormal && b == startSysex:
			s.buf = s.buf[1:]
			packets = append(packets, s.makePacket(startSysex, nil))
			s.mode = modeInsideSysex

		case s.mode == modeInsideSysex && b == endSysex:
			s.buf = s.buf[1:]
			packets = append(packets, s.makePacket(endSysex, nil))
			s.mode = modeNormal

		case b&0x80 != 0:
			length := statusLength(b)
			total := 1 + length
			if len(s.buf) < total {
				return packets
			}
			payload := append([]byte(nil), s.buf[1:total]...)
			s.buf = s.buf[total:]
			packets = append(packets, s.makePacket(b, payload))

		case s.mode == modeInsideSysex:
			s.buf = s.buf[1:]
			if n := len(packets); n > 0 && packets[n-1].Name == "DATA_SYSEX" {
				packets[n-1].Data = append(packets[n-1].Data, b)
			} else {
				packets = append(packets, Packet{Name: "DATA_SYSEX", Data: []byte{b}})
			}

		default:
			// NORMAL mode, lone data byte with no pending command: junk,
			// drop it and resynchronize.
			s.logf("firmata: dropping out-of-band byte 0x%02X", b)
			s.buf = s.buf[1:]
		}
	}
	return packets
}

// makePacket resolves a decoded opcode's symbolic name against the
// session's protocol version table.
func (s *Session) makePacket(opcode byte, data []byte) Packet {
	name, ok := lookupOpcodeName(s.version, opcode)
	if !ok {
		switch opcode {
		case startSysex:
			name = "START_SYSEX"
		case endSysex:
			name = "END_SYSEX"
		default:
			name = "UNKNOWN"
		}
	}
	return Packet{Opcode: opcode, Name: name, Data: data}
}
