package firmata

// Encoder sub-commands (spec §4.6 / encoder.md). Numbering follows the
// ConfigurableFirmata encoder.h source ordering (see DESIGN.md): ATTACH,
// REPORT_POSITION and REPORT_POSITIONS share the low values, then
// RESET_POSITION, REPORT_AUTO and DETACH follow in sequence.
const (
	encoderAttach     byte = 0
	encoderReport     byte = 1
	encoderReportAll  byte = 2
	encoderReset      byte = 3
	encoderReportAuto byte = 4
	encoderDetach     byte = 5

	encoderReplyDirectionBit byte = 0x40
	encoderReplyIDMask       byte = 0x3F
)

// EncodeEncoderAttach attaches a rotary encoder's two pins to a device
// id.
func EncodeEncoderAttach(s *Session, encoderID, pinA, pinB byte) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", encoderAttach, encoderID, pinA, pinB)
}

// EncodeEncoderReport asks for every attached encoder's current position.
func EncodeEncoderReport(s *Session) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", encoderReport)
}

// EncodeEncoderReset zeroes an encoder's position counter.
func EncodeEncoderReset(s *Session, encoderID byte) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", encoderReset, encoderID)
}

// EncodeEncoderReportAuto toggles unsolicited periodic position reports
// on or off for every attached encoder.
func EncodeEncoderReportAuto(s *Session, enable bool) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", encoderReportAuto, boolToByte(enable))
}

// EncodeEncoderReportPositions asks for the current position of a
// specific subset of attached encoders, rather than every encoder.
func EncodeEncoderReportPositions(s *Session, encoderIDs ...byte) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", append([]byte{encoderReportAll}, encoderIDs...)...)
}

// EncodeEncoderDetach releases an encoder's pins.
func EncodeEncoderDetach(s *Session, encoderID byte) []byte {
	return EncodeSysexCommand(s, "ENCODER_DATA", encoderDetach, encoderID)
}

// EncoderPosition is one encoder's record within a decoded report.
type EncoderPosition struct {
	ID       byte
	Position int32
}

// DecodeEncoderReply parses a report body into one record per attached
// encoder: each record is a command byte (direction in bit 0x40, id in
// the low 6 bits) followed by two 14-bit integers composing a 28-bit
// unsigned magnitude, negated when the direction bit is set.
func DecodeEncoderReply(body []byte) any {
	var positions []EncoderPosition
	for i := 0; i+5 <= len(body); i += 5 {
		cmd := body[i]
		low, _ := decode14(body[i+1 : i+3])
		high, _ := decode14(body[i+3 : i+5])
		mag := int32(low) | int32(high)<<14
		if cmd&encoderReplyDirectionBit != 0 {
			mag = -mag
		}
		positions = append(positions, EncoderPosition{
			ID:       cmd & encoderReplyIDMask,
			Position: mag,
		})
	}
	return positions
}
