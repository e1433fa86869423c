package firmatactl

import (
	"fmt"

	serial "github.com/daedaluz/goserial"
)

// bitRate maps a handful of common Firmata baud rates to the termios
// CFlag constant goserial expects; anything else falls back to a custom
// input/output speed via Termios2.
var bitRate = map[uint32]serial.CFlag{
	9600:   serial.B9600,
	19200:  serial.B19200,
	38400:  serial.B38400,
	57600:  serial.B57600,
	115200: serial.B115200,
}

func openPort(name string, baud uint32) (*serial.Port, error) {
	port, err := serial.Open(name, nil)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}

	attrs, err := port.GetAttr2()
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("get termios for %s: %w", name, err)
	}
	attrs.MakeRaw()
	if cflag, ok := bitRate[baud]; ok {
		attrs.SetSpeed(cflag)
	} else {
		attrs.SetCustomSpeed(baud)
	}
	if err := port.SetAttr2(serial.TCSANOW, attrs); err != nil {
		port.Close()
		return nil, fmt.Errorf("set termios for %s: %w", name, err)
	}
	return port, nil
}
