// Package firmatactl implements the firmatactl command-line tool: a thin
// host that pairs the firmata codec with a real serial port to dump
// decoded traffic or send one-off requests to a connected board.
package firmatactl

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	port    string
	baud    uint32
	version string
	debug   bool
}

// NewCommand builds the firmatactl root command.
func NewCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:               "firmatactl",
		Short:             "Talk to a Firmata-speaking board over a serial port",
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().StringVar(&flags.port, "port", "", "serial device path (e.g. /dev/ttyACM0)")
	cmd.PersistentFlags().Uint32Var(&flags.baud, "baud", 57600, "serial baud rate")
	cmd.PersistentFlags().StringVar(&flags.version, "protocol-version", "", "protocol version tag the session starts with (default: latest implemented); dump switches to the version negotiated from any REPORT_VERSION it receives")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(newDumpCommand(flags))
	cmd.AddCommand(newSendCommand(flags))

	return cmd
}

func requirePort(flags *rootFlags) error {
	if flags.port == "" {
		return fmt.Errorf("--port is required")
	}
	return nil
}
