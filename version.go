package firmata

import "sort"

// ProtocolVersion is an immutable, lexicographically ordered protocol
// version tag such as "V_2_05". Newer versions are vocabulary supersets
// of older ones except where a feature's wire shape itself changed (the
// 1-Wire READ correlation id, gated separately — see onewire.go).
type ProtocolVersion string

const (
	V_2_01 ProtocolVersion = "V_2_01"
	V_2_02 ProtocolVersion = "V_2_02"
	V_2_03 ProtocolVersion = "V_2_03"
	V_2_04 ProtocolVersion = "V_2_04"
	V_2_05 ProtocolVersion = "V_2_05"
	V_2_06 ProtocolVersion = "V_2_06"

	minVersion    = V_2_01
	latestVersion = V_2_06
)

// orderedVersions lists every version this package implements, oldest
// first. Kept explicit (rather than derived from the feature table)
// because negotiate must answer correctly even against a version tag
// this package has never heard of.
var orderedVersions = []ProtocolVersion{V_2_01, V_2_02, V_2_03, V_2_04, V_2_05, V_2_06}

// feature binds a command name and opcode to the version it first
// appears in; a version's table is the cumulative union of every feature
// introduced at or before it, matching "newer versions are supersets"
// (spec §3).
type feature struct {
	name       string
	opcode     byte
	introduced ProtocolVersion
}

// featureTable is the complete, version-tagged command vocabulary. Scheduler,
// AccelStepper, Encoder and Serial-v2 are comparatively recent Firmata
// proposals; they're gated to the versions they were actually proposed
// against (see DESIGN.md for the version-gating rationale, since spec.md
// itself only pins the 1-Wire id field to a version boundary).
var featureTable = []feature{
	// Core short messages.
	{"DIGITAL_MESSAGE", digitalMessage, V_2_01},
	{"ANALOG_MESSAGE", analogMessage, V_2_01},
	{"REPORT_ANALOG_PIN", reportAnalogPin, V_2_01},
	{"REPORT_DIGITAL_PORT", reportDigitalPort, V_2_01},
	{"SET_PIN_MODE", setPinMode, V_2_01},
	{"SET_DIGITAL_PIN_VALUE", setDigitalPinValue, V_2_03},
	{"REPORT_VERSION", reportVersion, V_2_01},
	{"SYSTEM_RESET", systemReset, V_2_01},

	// Core SysEx.
	{"STRING_DATA", sysexStringData, V_2_01},
	{"SERVO_CONFIG", sysexServoConfig, V_2_01},
	{"SHIFT_DATA", sysexShiftData, V_2_01},
	{"I2C_REQUEST", sysexI2CRequest, V_2_01},
	{"I2C_REPLY", sysexI2CReply, V_2_01},
	{"I2C_CONFIG", sysexI2CConfig, V_2_01},
	{"EXTENDED_ANALOG", sysexExtendedAnalog, V_2_01},
	{"PIN_STATE_QUERY", sysexPinStateQuery, V_2_01},
	{"PIN_STATE_RESPONSE", sysexPinStateReply, V_2_01},
	{"CAPABILITY_QUERY", sysexCapabilityQuery, V_2_01},
	{"CAPABILITY_RESPONSE", sysexCapabilityReply, V_2_01},
	{"ANALOG_MAPPING_QUERY", sysexAnalogMapQuery, V_2_01},
	{"ANALOG_MAPPING_RESPONSE", sysexAnalogMapReply, V_2_01},
	{"REPORT_FIRMWARE", sysexReportFirmware, V_2_01},
	{"SAMPLING_INTERVAL", sysexSamplingInterval, V_2_01},
	{"STEPPER_DATA", sysexStepperData, V_2_01},
	{"ONEWIRE_DATA", sysexOneWireData, V_2_02},
	{"DHT_SENSOR_DATA", sysexDHTSensorData, V_2_03},

	// Later proposals.
	{"SCHEDULER_DATA", sysexSchedulerData, V_2_05},
	{"SERIAL_DATA", sysexSerialDataV1, V_2_05},
	{"SPI_DATA", sysexSPIData, V_2_05},
	{"ENCODER_DATA", sysexEncoderData, V_2_06},
	{"ACCELSTEPPER_DATA", sysexAccelStepperData, V_2_06},
	{"SERIAL_DATA_V2", sysexSerialDataV2, V_2_06},

	{"RESERVED_COMMAND", sysexReserved0, V_2_01},
}

type versionTable struct {
	nameToOpcode map[string]byte
	opcodeToName map[byte]string
}

var versionTables = buildVersionTables()

func buildVersionTables() map[ProtocolVersion]*versionTable {
	tables := make(map[ProtocolVersion]*versionTable, len(orderedVersions))
	for i, v := range orderedVersions {
		t := &versionTable{
			nameToOpcode: map[string]byte{},
			opcodeToName: map[byte]string{},
		}
		if i > 0 {
			prev := tables[orderedVersions[i-1]]
			for k, val := range prev.nameToOpcode {
				t.nameToOpcode[k] = val
			}
			for k, val := range prev.opcodeToName {
				t.opcodeToName[k] = val
			}
		}
		tables[v] = t
	}
	for _, f := range featureTable {
		for i, v := range orderedVersions {
			if v == f.introduced {
				for j := i; j < len(orderedVersions); j++ {
					t := tables[orderedVersions[j]]
					t.nameToOpcode[f.name] = f.opcode
					t.opcodeToName[f.opcode] = f.name
				}
				break
			}
		}
	}
	return tables
}

// lookupOpcodeName resolves an opcode to its symbolic name under the
// given version, honoring the reserved-command range (user-defined
// feature codes 0x00-0x0F all report as RESERVED_COMMAND).
func lookupOpcodeName(version ProtocolVersion, opcode byte) (string, bool) {
	t, ok := versionTables[version]
	if !ok {
		t = versionTables[latestVersion]
	}
	if name, ok := t.opcodeToName[opcode]; ok {
		return name, true
	}
	if opcode >= sysexReserved0 && opcode <= sysexReservedMax {
		return "RESERVED_COMMAND", true
	}
	return "", false
}

// lookupCommandOpcode resolves a command name to its opcode under the
// given version; ok is false for an unknown or not-yet-introduced name.
func lookupCommandOpcode(version ProtocolVersion, name string) (byte, bool) {
	t, ok := versionTables[version]
	if !ok {
		return 0, false
	}
	op, ok := t.nameToOpcode[name]
	return op, ok
}

// NegotiateVersion returns the highest version this package supports that
// is no greater than reported, falling back to the documented minimum
// V_2_01 when reported sorts below everything known (spec §4.7/§8
// property 7).
func NegotiateVersion(reported ProtocolVersion) ProtocolVersion {
	if _, ok := versionTables[reported]; ok {
		return reported
	}
	idx := sort.Search(len(orderedVersions), func(i int) bool {
		return orderedVersions[i] >= reported
	})
	if idx == 0 {
		return minVersion
	}
	return orderedVersions[idx-1]
}
