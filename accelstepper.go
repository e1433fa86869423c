package firmata

// AccelStepper sub-commands (spec §4.6 / accelstepper.md numbering).
const (
	accelConfig           byte = 0x00
	accelZero             byte = 0x01
	accelStep             byte = 0x02
	accelTo               byte = 0x03
	accelEnable           byte = 0x04
	accelStop             byte = 0x05
	accelReportPosition   byte = 0x06
	accelSpeed            byte = 0x09
	accelAccel            byte = 0x08
	accelMoveComplete     byte = 0x0A
	accelMultiConfig      byte = 0x20
	accelMultiTo          byte = 0x21
	accelMultiStop        byte = 0x22
	accelMultiMove        byte = 0x23
	accelMultiMoveComplete byte = 0x24

	AccelInterfaceDriver   byte = 1
	AccelInterfaceTwoWire  byte = 2
	AccelInterfaceFourWire byte = 4
)

// AccelStepperPins is the CONFIG request's pin set. Pin3/Pin4 are sent
// only when HasPin3/HasPin4 are set (a four-wire interface needs both),
// whatever the interface; EnablePin is optional.
type AccelStepperPins struct {
	Pin1, Pin2, Pin3, Pin4 byte
	HasPin3, HasPin4       bool
	EnablePin              byte
	HasEnablePin           bool
	InvertMask             byte
}

func checkDeviceID(fn string, id byte) error {
	if id > 9 {
		return argErrorf(fn, "device id %d out of range [0,9]", id)
	}
	return nil
}

func checkGroup(fn string, group byte) error {
	if group > 4 {
		return argErrorf(fn, "group %d out of range [0,4]", group)
	}
	return nil
}

// EncodeAccelStepperConfig configures an AccelStepper device.
func EncodeAccelStepperConfig(s *Session, deviceID, iface, stepType byte, pins AccelStepperPins) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperConfig", deviceID); err != nil {
		return nil, err
	}
	switch iface {
	case AccelInterfaceDriver, AccelInterfaceTwoWire, AccelInterfaceFourWire:
	default:
		return nil, argErrorf("EncodeAccelStepperConfig", "unknown interface %d", iface)
	}
	hasEnable := byte(0)
	if pins.HasEnablePin {
		hasEnable = 1
	}
	ifaceByte := (iface&0x07)<<4 | (stepType&0x07)<<1 | hasEnable
	payload := []byte{accelConfig, deviceID, ifaceByte, pins.Pin1, pins.Pin2}
	if pins.HasPin3 {
		payload = append(payload, pins.Pin3)
	}
	if pins.HasPin4 {
		payload = append(payload, pins.Pin4)
	}
	if pins.HasEnablePin {
		payload = append(payload, pins.EnablePin)
	}
	payload = append(payload, pins.InvertMask)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", payload...), nil
}

func encodeAccelMotion(s *Session, sub, deviceID byte, position int32) ([]byte, error) {
	if err := checkDeviceID("AccelStepper motion command", deviceID); err != nil {
		return nil, err
	}
	payload := append([]byte{sub, deviceID}, encode32(position)...)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", payload...), nil
}

// EncodeAccelStepperStep commands a relative move of numSteps.
func EncodeAccelStepperStep(s *Session, deviceID byte, numSteps int32) ([]byte, error) {
	return encodeAccelMotion(s, accelStep, deviceID, numSteps)
}

// EncodeAccelStepperTo commands an absolute move to position.
func EncodeAccelStepperTo(s *Session, deviceID byte, position int32) ([]byte, error) {
	return encodeAccelMotion(s, accelTo, deviceID, position)
}

// EncodeAccelStepperMove is an alias for a MOVE command, identical on the
// wire to TO (the proposal's naming distinguishes caller intent only).
func EncodeAccelStepperMove(s *Session, deviceID byte, position int32) ([]byte, error) {
	return encodeAccelMotion(s, accelTo, deviceID, position)
}

// EncodeAccelStepperZero resets a device's position counter to zero.
func EncodeAccelStepperZero(s *Session, deviceID byte) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperZero", deviceID); err != nil {
		return nil, err
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelZero, deviceID), nil
}

// EncodeAccelStepperStop halts a device's current move.
func EncodeAccelStepperStop(s *Session, deviceID byte) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperStop", deviceID); err != nil {
		return nil, err
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelStop, deviceID), nil
}

// EncodeAccelStepperSpeed sets a device's constant speed, in steps/sec.
func EncodeAccelStepperSpeed(s *Session, deviceID byte, speed float64) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperSpeed", deviceID); err != nil {
		return nil, err
	}
	f := encodeFloat(speed)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelSpeed, deviceID, f[0], f[1], f[2], f[3]), nil
}

// EncodeAccelStepperAccel sets a device's acceleration, in steps/sec^2.
func EncodeAccelStepperAccel(s *Session, deviceID byte, accel float64) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperAccel", deviceID); err != nil {
		return nil, err
	}
	f := encodeFloat(accel)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelAccel, deviceID, f[0], f[1], f[2], f[3]), nil
}

// EncodeAccelStepperEnable toggles a device's enable pin.
func EncodeAccelStepperEnable(s *Session, deviceID byte, enabled bool) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperEnable", deviceID); err != nil {
		return nil, err
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelEnable, deviceID, boolToByte(enabled)), nil
}

// EncodeAccelStepperReportPosition asks a device to report its current
// position once.
func EncodeAccelStepperReportPosition(s *Session, deviceID byte) ([]byte, error) {
	if err := checkDeviceID("EncodeAccelStepperReportPosition", deviceID); err != nil {
		return nil, err
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelReportPosition, deviceID), nil
}

func checkGroupMembers(fn string, ids []byte) error {
	if len(ids) > 10 {
		return argErrorf(fn, "group has %d members, max 10", len(ids))
	}
	return nil
}

// EncodeAccelStepperMultiConfig assigns a list of device ids to group.
func EncodeAccelStepperMultiConfig(s *Session, group byte, ids []byte) ([]byte, error) {
	if err := checkGroup("EncodeAccelStepperMultiConfig", group); err != nil {
		return nil, err
	}
	if err := checkGroupMembers("EncodeAccelStepperMultiConfig", ids); err != nil {
		return nil, err
	}
	payload := append([]byte{accelMultiConfig, group}, ids...)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", payload...), nil
}

// EncodeAccelStepperMultiTo commands every member of group to an absolute
// position.
func EncodeAccelStepperMultiTo(s *Session, group byte, position int32) ([]byte, error) {
	if err := checkGroup("EncodeAccelStepperMultiTo", group); err != nil {
		return nil, err
	}
	payload := append([]byte{accelMultiTo, group}, encode32(position)...)
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", payload...), nil
}

// EncodeAccelStepperMultiStop halts every member of group.
func EncodeAccelStepperMultiStop(s *Session, group byte) ([]byte, error) {
	if err := checkGroup("EncodeAccelStepperMultiStop", group); err != nil {
		return nil, err
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", accelMultiStop, group), nil
}

// EncodeAccelStepperMultiMove commands each member of group to its own
// absolute position, positions given in group member order.
func EncodeAccelStepperMultiMove(s *Session, group byte, positions []int32) ([]byte, error) {
	if err := checkGroup("EncodeAccelStepperMultiMove", group); err != nil {
		return nil, err
	}
	if len(positions) > 10 {
		return nil, argErrorf("EncodeAccelStepperMultiMove", "group has %d members, max 10", len(positions))
	}
	payload := []byte{accelMultiMove, group}
	for _, p := range positions {
		payload = append(payload, encode32(p)...)
	}
	return EncodeSysexCommand(s, "ACCELSTEPPER_DATA", payload...), nil
}

// AccelStepperPosition is a decoded MOVE_COMPLETE or REPORT_POSITION
// reply.
type AccelStepperPosition struct {
	DeviceID byte
	Position int32
}

// AccelStepperMultiMoveComplete is a decoded MULTIMOVE_COMPLETE reply.
type AccelStepperMultiMoveComplete struct {
	Group byte
}

// DecodeAccelStepperReply dispatches an ACCELSTEPPER_DATA sub-command
// payload.
func DecodeAccelStepperReply(body []byte) any {
	if len(body) == 0 {
		return UnknownSysex{Data: body}
	}
	sub, rest := body[0], body[1:]
	switch sub {
	case accelMoveComplete, accelReportPosition:
		if len(rest) < 1 {
			return UnknownSysex{Opcode: sub, Data: body}
		}
		pos := decode32(rest[1:])
		return AccelStepperPosition{DeviceID: rest[0], Position: pos}
	case accelMultiMoveComplete:
		if len(rest) < 1 {
			return UnknownSysex{Opcode: sub, Data: body}
		}
		return AccelStepperMultiMoveComplete{Group: rest[0]}
	default:
		return UnknownSysex{Opcode: sub, Data: body}
	}
}
