// Package firmata implements the Firmata wire protocol: a MIDI-derived
// framing scheme over a serial byte link used to command and observe a
// microcontroller that exposes its pins and peripherals to a host.
//
// The package is a pure codec. It does not own a transport; callers push
// inbound bytes into a Session and pull decoded Packets back out, and call
// the Encode* family to turn typed requests into wire bytes. See cmd/firmatactl
// for an example host that pairs the codec with a real serial port.
package firmata
