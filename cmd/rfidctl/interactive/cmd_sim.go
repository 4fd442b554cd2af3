package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/sim"
)

func (s *Shell) cmdSim(args []string) {
	if s.sim == nil {
		s.printf("No simulator attached\n")
		return
	}
	if len(args) < 1 {
		s.printf("Usage: sim trigger|battery|disappear|appear|tags|tag ...\n")
		return
	}

	switch strings.ToLower(args[0]) {
	case "trigger":
		s.simTrigger(args[1:])
	case "battery":
		s.simBattery(args[1:])
	case "disappear":
		if id, ok := s.readerArg(args[1:], "sim disappear <reader>"); ok {
			s.sim.SimulateDisappear(id)
			s.printf("Reader %d out of range\n", id)
		}
	case "appear":
		if id, ok := s.readerArg(args[1:], "sim appear <reader>"); ok {
			s.sim.SimulateAppear(id)
			s.printf("Reader %d in range\n", id)
		}
	case "tags":
		tags := s.sim.Tags()
		s.printf("Tags in field (%d):\n", len(tags))
		for _, epc := range tags {
			s.printf("  %s\n", epc)
		}
	case "tag":
		s.simTag(args[1:])
	default:
		s.printf("Unknown sim command: %s\n", args[0])
	}
}

func (s *Shell) simTrigger(args []string) {
	if len(args) < 2 {
		s.printf("Usage: sim trigger <reader> press|release\n")
		return
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	switch strings.ToLower(args[1]) {
	case "press":
		s.sim.SimulateTrigger(id, true)
	case "release":
		s.sim.SimulateTrigger(id, false)
	default:
		s.printf("Usage: sim trigger <reader> press|release\n")
		return
	}
	s.printf("Trigger %s on reader %d\n", strings.ToLower(args[1]), id)
}

func (s *Shell) simBattery(args []string) {
	if len(args) < 2 {
		s.printf("Usage: sim battery <reader> <level> [charging]\n")
		return
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	level, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil || level < 0 || level > 100 {
		s.fail(fmt.Errorf("invalid battery level %q", args[1]))
		return
	}
	charging := optional(args, 2) == "charging"
	s.sim.SimulateBattery(id, int32(level), charging, "simulated")
	s.printf("Battery of reader %d set to %d%%\n", id, level)
}

func (s *Shell) simTag(args []string) {
	if len(args) < 2 {
		s.printf("Usage: sim tag add|rm <epc>\n")
		return
	}
	epc := strings.ToUpper(args[1])
	switch strings.ToLower(args[0]) {
	case "add":
		s.sim.AddTag(sim.Tag{EPC: epc})
		s.printf("Tag %s added\n", epc)
	case "rm", "remove":
		s.sim.RemoveTag(epc)
		s.printf("Tag %s removed\n", epc)
	default:
		s.printf("Usage: sim tag add|rm <epc>\n")
	}
}
