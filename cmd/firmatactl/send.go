package firmatactl

import (
	"fmt"

	"github.com/gofirmata/firmata"
	"github.com/gofirmata/firmata/internal/logging"
	"github.com/spf13/cobra"
)

func newSendCommand(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Build and write a single Firmata request to the port",
	}
	cmd.AddCommand(newDigitalWriteCommand(flags))
	cmd.AddCommand(newAnalogWriteCommand(flags))
	cmd.AddCommand(newPinModeCommand(flags))
	cmd.AddCommand(newResetCommand(flags))
	cmd.AddCommand(newCapabilityQueryCommand(flags))
	return cmd
}

func writeMessage(flags *rootFlags, build func(*firmata.Session) []byte) error {
	if err := requirePort(flags); err != nil {
		return err
	}
	log := logging.New(flags.debug)

	port, err := openPort(flags.port, flags.baud)
	if err != nil {
		return err
	}
	defer port.Close()

	session := firmata.NewSession(firmata.ProtocolVersion(flags.version))
	msg := build(session)
	if msg == nil {
		return fmt.Errorf("command not available under protocol version %s", session.Version())
	}
	if _, err := port.Write(msg); err != nil {
		return fmt.Errorf("write %s: %w", flags.port, err)
	}
	log.Info("sent", "bytes", len(msg))
	return nil
}

func newDigitalWriteCommand(flags *rootFlags) *cobra.Command {
	var pin int
	var value bool
	cmd := &cobra.Command{
		Use:   "digital-write",
		Short: "Set a single digital pin's value",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMessage(flags, func(s *firmata.Session) []byte {
				return firmata.EncodeSetDigitalPinValue(s, byte(pin), value)
			})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	cmd.Flags().BoolVar(&value, "value", false, "pin value")
	return cmd
}

func newAnalogWriteCommand(flags *rootFlags) *cobra.Command {
	var pin, value int
	cmd := &cobra.Command{
		Use:   "analog-write",
		Short: "Write a PWM/analog value to a pin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMessage(flags, func(s *firmata.Session) []byte {
				return firmata.EncodeAnalogWrite(s, byte(pin), value)
			})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	cmd.Flags().IntVar(&value, "value", 0, "analog value, 0-16383")
	return cmd
}

func newPinModeCommand(flags *rootFlags) *cobra.Command {
	var pin int
	var mode string
	cmd := &cobra.Command{
		Use:   "pin-mode",
		Short: "Set a pin's mode (INPUT, OUTPUT, ANALOG, PWM, SERVO, SHIFT, I2C, ...)",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMode(mode)
			if err != nil {
				return err
			}
			return writeMessage(flags, func(s *firmata.Session) []byte {
				return firmata.EncodeSetPinMode(s, byte(pin), m)
			})
		},
	}
	cmd.Flags().IntVar(&pin, "pin", 0, "pin number")
	cmd.Flags().StringVar(&mode, "mode", "OUTPUT", "pin mode name")
	return cmd
}

func resolveMode(name string) (byte, error) {
	for b, n := range firmata.PinModeString {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown pin mode %q", name)
}

func newResetCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Send SYSTEM_RESET",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMessage(flags, func(s *firmata.Session) []byte {
				return firmata.EncodeSystemReset(s)
			})
		},
	}
}

func newCapabilityQueryCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "capability-query",
		Short: "Send CAPABILITY_QUERY",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMessage(flags, func(s *firmata.Session) []byte {
				return firmata.EncodeCapabilityQuery(s)
			})
		},
	}
}
