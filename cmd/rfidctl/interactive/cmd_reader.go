package interactive

import (
	"fmt"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
	"github.com/Syfaro/ZebraRfid/pkg/version"
)

// defaultReport includes every optional field in inventory reports.
var defaultReport = rfid.ReportConfig{
	FirstSeenTime: true,
	LastSeenTime:  true,
	PC:            true,
	RSSI:          true,
	Phase:         true,
	ChannelIndex:  true,
	SeenCount:     true,
}

// readerArg parses args[0] as a reader id, printing usage when missing.
func (s *Shell) readerArg(args []string, usage string) (int32, bool) {
	if len(args) < 1 {
		s.printf("Usage: %s\n", usage)
		return 0, false
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return 0, false
	}
	return id, true
}

func (s *Shell) cmdReaders(args []string) {
	list := s.mgr.AvailableReaders
	title := "Available"
	if optional(args, 0) == "active" {
		list = s.mgr.ActiveReaders
		title = "Active"
	}

	readers, err := list()
	if err != nil {
		s.fail(err)
		return
	}
	if len(readers) == 0 {
		s.printf("No readers\n")
		return
	}

	s.printf("%s readers (%d):\n", title, len(readers))
	for _, r := range readers {
		state := "idle"
		if r.Active {
			state = "active"
		}
		s.printf("  %-4d %-28s model=%d %-5s %s\n", r.ID, r.Name, r.Model, r.ConnectionType, state)
	}
}

func (s *Shell) cmdConnect(args []string) {
	id, ok := s.readerArg(args, "connect <reader>")
	if !ok {
		return
	}
	if err := s.mgr.EstablishSession(id); err != nil {
		s.fail(err)
		return
	}
	s.printf("Session established with reader %d\n", id)
}

func (s *Shell) cmdDisconnect(args []string) {
	id, ok := s.readerArg(args, "disconnect <reader>")
	if !ok {
		return
	}
	if err := s.mgr.TerminateSession(id); err != nil {
		s.fail(err)
		return
	}
	s.printf("Session with reader %d terminated\n", id)
}

func (s *Shell) cmdDetect(args []string) {
	if len(args) < 1 {
		s.printf("Usage: detect on|off\n")
		return
	}
	on, err := parseOnOff(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.mgr.EnableReaderDetection(on); err != nil {
		s.fail(err)
		return
	}
	s.printf("Reader detection %s\n", onOff(on))
}

func (s *Shell) cmdASCII(args []string) {
	if len(args) < 2 {
		s.printf("Usage: ascii <reader> <password>\n")
		return
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.mgr.EstablishASCIIConnection(id, args[1]); err != nil {
		s.fail(err)
		return
	}
	s.printf("ASCII connection open on reader %d\n", id)
}

// startStop dispatches "<verb> start|stop <reader> ..." commands.
func (s *Shell) startStop(args []string, usage string, start func(int32, []string) error, stop func(int32) error) {
	if len(args) < 2 {
		s.printf("Usage: %s\n", usage)
		return
	}
	id, err := parseReader(args[1])
	if err != nil {
		s.fail(err)
		return
	}

	switch strings.ToLower(args[0]) {
	case "start":
		err = start(id, args[2:])
	case "stop":
		err = stop(id)
	default:
		s.printf("Usage: %s\n", usage)
		return
	}
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("OK\n")
}

func (s *Shell) cmdInventory(args []string) {
	s.startStop(args, "inventory start|stop <reader> [bank]",
		func(id int32, rest []string) error {
			bank := rfid.MemoryBankNone
			if len(rest) > 0 {
				b, err := parseEnum("memory bank", rest[0], memoryBanks)
				if err != nil {
					return err
				}
				bank = b
			}
			return s.mgr.StartInventory(id, bank, defaultReport, rfid.AccessConfig{})
		},
		s.mgr.StopInventory)
}

func (s *Shell) cmdRapid(args []string) {
	s.startStop(args, "rapid start|stop <reader>",
		func(id int32, _ []string) error {
			return s.mgr.StartRapidRead(id, defaultReport, rfid.AccessConfig{})
		},
		s.mgr.StopRapidRead)
}

func (s *Shell) cmdLocate(args []string) {
	s.startStop(args, "locate start <reader> <epc> | locate stop <reader>",
		func(id int32, rest []string) error {
			if len(rest) < 1 {
				return fmt.Errorf("tag EPC required")
			}
			return s.mgr.StartTagLocationing(id, rest[0])
		},
		s.mgr.StopTagLocationing)
}

func (s *Shell) cmdFetch(args []string) {
	id, ok := s.readerArg(args, "fetch <reader>")
	if !ok {
		return
	}
	if err := s.mgr.FetchTags(id); err != nil {
		s.fail(err)
		return
	}
	s.printf("Batched reads requested\n")
}

func (s *Shell) cmdPurge(args []string) {
	id, ok := s.readerArg(args, "purge <reader>")
	if !ok {
		return
	}
	if err := s.mgr.PurgeTags(id); err != nil {
		s.fail(err)
		return
	}
	s.printf("Batched reads purged\n")
}

func (s *Shell) cmdVersion(args []string) {
	if len(args) == 0 {
		v, err := s.mgr.SDKVersion()
		if err != nil {
			s.fail(err)
			return
		}
		s.printf("SDK version: %s\n", v)
		if _, err := version.CheckSDK(v); err != nil {
			s.printf("Warning: %v\n", err)
		}
		s.printf("rfidctl:     %s\n", version.Build)
		return
	}

	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	v, err := s.mgr.ReaderVersion(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Device:    %s\n", v.Device)
	s.printf("Bluetooth: %s\n", v.Bluetooth)
	s.printf("NGE:       %s\n", v.NGE)
	s.printf("PL33:      %s\n", v.PL33)
}

func (s *Shell) cmdCaps(args []string) {
	id, ok := s.readerArg(args, "caps <reader>")
	if !ok {
		return
	}
	c, err := s.mgr.ReaderCapabilities(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Model:          %s (%s)\n", c.Model, c.Manufacturer)
	s.printf("Serial:         %s\n", c.SerialNumber)
	s.printf("Manufactured:   %s\n", c.ManufacturingDate)
	s.printf("Power:          %d..%d step %d\n", c.MinPower, c.MaxPower, c.PowerStep)
	s.printf("Select filters: %d\n", c.SelectFilterNum)
	s.printf("Air protocol:   %s\n", c.AirProtocolVersion)
	s.printf("BD address:     %s\n", c.BDAddress)
}

func (s *Shell) cmdRegions(args []string) {
	id, ok := s.readerArg(args, "regions <reader>")
	if !ok {
		return
	}
	regions, err := s.mgr.SupportedRegions(id)
	if err != nil {
		s.fail(err)
		return
	}
	for _, r := range regions {
		s.printf("  %-6s %s\n", r.Code, r.Name)
	}
}

func (s *Shell) cmdBattery(args []string) {
	id, ok := s.readerArg(args, "battery <reader>")
	if !ok {
		return
	}
	if err := s.mgr.RequestBatteryStatus(id); err != nil {
		s.fail(err)
		return
	}
	s.printf("Battery status requested (arrives as an event)\n")
}
