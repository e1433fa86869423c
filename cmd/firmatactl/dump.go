package firmatactl

import (
	"fmt"

	"github.com/gofirmata/firmata"
	"github.com/gofirmata/firmata/internal/logging"
	"github.com/spf13/cobra"
)

func newDumpCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Open the port and print every decoded packet as it arrives",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(flags)
		},
	}
}

func runDump(flags *rootFlags) error {
	if err := requirePort(flags); err != nil {
		return err
	}
	log := logging.New(flags.debug)

	port, err := openPort(flags.port, flags.baud)
	if err != nil {
		return err
	}
	defer port.Close()

	version := firmata.ProtocolVersion(flags.version)
	session := firmata.NewSession(version)
	session.SetDiagnostics(func(msg string, args ...any) { log.Debug(fmt.Sprintf(msg, args...)) })

	log.Info("dumping", "port", flags.port, "baud", flags.baud)

	buf := make([]byte, 256)
	for {
		n, err := port.Read(buf)
		if err != nil {
			return fmt.Errorf("read %s: %w", flags.port, err)
		}
		if n == 0 {
			continue
		}
		for _, pkt := range session.Decode(buf[:n]) {
			logPacket(log, session, pkt)
		}
	}
}

func logPacket(log interface {
	Info(msg string, args ...any)
}, session *firmata.Session, pkt firmata.Packet) {
	switch pkt.Name {
	case "START_SYSEX", "END_SYSEX":
		return
	case "REPORT_VERSION":
		if len(pkt.Data) == 2 {
			reported := firmata.ProtocolVersion(fmt.Sprintf("V_%d_%02d", pkt.Data[0], pkt.Data[1]))
			session.SetVersion(firmata.NegotiateVersion(reported))
			log.Info("negotiated protocol version", "version", session.Version())
		}
	default:
		log.Info("packet", "name", pkt.Name, "opcode", fmt.Sprintf("0x%02X", pkt.Opcode), "bytes", len(pkt.Data))
	}
}
