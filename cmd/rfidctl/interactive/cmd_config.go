package interactive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

func (s *Shell) cmdAntenna(args []string) {
	id, ok := s.readerArg(args, "antenna <reader> [dbm] [profile]")
	if !ok {
		return
	}
	cfg, err := s.mgr.AntennaConfig(id)
	if err != nil {
		s.fail(err)
		return
	}

	if len(args) > 1 {
		dbm, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			s.fail(fmt.Errorf("invalid power %q", args[1]))
			return
		}
		cfg.Power = int16(math.Round(dbm * 10))
		if len(args) > 2 {
			idx, err := strconv.ParseInt(args[2], 10, 16)
			if err != nil {
				s.fail(fmt.Errorf("invalid link profile %q", args[2]))
				return
			}
			cfg.LinkProfileIndex = int16(idx)
		}
		if err := s.mgr.SetAntennaConfig(id, cfg); err != nil {
			s.fail(err)
			return
		}
	}

	s.printf("Power:        %.1f dBm\n", float64(cfg.Power)/10)
	s.printf("Link profile: %d\n", cfg.LinkProfileIndex)
	s.printf("Tari:         %d\n", cfg.Tari)
}

func (s *Shell) cmdSingulation(args []string) {
	id, ok := s.readerArg(args, "singulation <reader> [session] [population]")
	if !ok {
		return
	}
	cfg, err := s.mgr.SingulationConfig(id)
	if err != nil {
		s.fail(err)
		return
	}

	if len(args) > 1 {
		session, err := parseEnum("session", args[1], sessions)
		if err != nil {
			s.fail(err)
			return
		}
		cfg.Session = session
		if len(args) > 2 {
			pop, err := strconv.ParseInt(args[2], 10, 32)
			if err != nil {
				s.fail(fmt.Errorf("invalid tag population %q", args[2]))
				return
			}
			cfg.TagPopulation = int32(pop)
		}
		if err := s.mgr.SetSingulationConfig(id, cfg); err != nil {
			s.fail(err)
			return
		}
	}

	s.printf("Session:         %s\n", cfg.Session)
	s.printf("SL flag:         %s\n", cfg.SLFlag)
	s.printf("Inventory state: %s\n", cfg.InventoryState)
	s.printf("Tag population:  %d\n", cfg.TagPopulation)
}

func (s *Shell) cmdTrigger(args []string) {
	id, ok := s.readerArg(args, "trigger <reader> [immediate|handheld]")
	if !ok {
		return
	}

	if len(args) > 1 {
		var start rfid.StartTrigger
		var stop rfid.StopTrigger
		switch strings.ToLower(args[1]) {
		case "immediate":
			start, stop = rfid.StartImmediate{}, rfid.StopNone{}
		case "handheld":
			start = rfid.StartOnHandheld{Type: rfid.TriggerTypePress}
			stop = rfid.StopOnHandheld{Type: rfid.TriggerTypeRelease}
		default:
			s.printf("Usage: trigger <reader> [immediate|handheld]\n")
			return
		}
		if err := s.mgr.SetStartTrigger(id, start); err != nil {
			s.fail(err)
			return
		}
		if err := s.mgr.SetStopTrigger(id, stop); err != nil {
			s.fail(err)
			return
		}
	}

	start, err := s.mgr.StartTrigger(id)
	if err != nil {
		s.fail(err)
		return
	}
	stop, err := s.mgr.StopTrigger(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Start: %s\n", describeStart(start))
	s.printf("Stop:  %s\n", describeStop(stop))
}

func describeStart(t rfid.StartTrigger) string {
	switch t := t.(type) {
	case rfid.StartOnHandheld:
		return fmt.Sprintf("handheld %s delay=%dms", t.Type, t.Delay)
	default:
		return "immediate"
	}
}

func describeStop(t rfid.StopTrigger) string {
	h, ok := t.(rfid.StopOnHandheld)
	if !ok {
		return "none"
	}
	desc := "handheld " + h.Type.String()
	if h.TagCount != nil {
		desc += fmt.Sprintf(" tags=%d", *h.TagCount)
	}
	if h.Timeout != nil {
		desc += fmt.Sprintf(" timeout=%dms", *h.Timeout)
	}
	return desc
}

func (s *Shell) cmdRegulatory(args []string) {
	id, ok := s.readerArg(args, "regulatory <reader> [region]")
	if !ok {
		return
	}

	if len(args) > 1 {
		code := strings.ToUpper(args[1])
		info, err := s.mgr.RegionInfo(id, code)
		if err != nil {
			s.fail(err)
			return
		}
		err = s.mgr.SetRegulatoryConfig(id, rfid.RegulatoryConfig{
			RegionCode:      code,
			EnabledChannels: info.Channels,
			Hopping:         rfid.HoppingConfigDefault,
		})
		if err != nil {
			s.fail(err)
			return
		}
	}

	cfg, err := s.mgr.RegulatoryConfig(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Region:   %s\n", cfg.RegionCode)
	s.printf("Channels: %s\n", strings.Join(cfg.EnabledChannels, " "))
	s.printf("Hopping:  %s\n", cfg.Hopping)
}

func (s *Shell) cmdBeeper(args []string) {
	id, ok := s.readerArg(args, "beeper <reader> [high|medium|low|quiet]")
	if !ok {
		return
	}
	if len(args) > 1 {
		b, err := parseEnum("beeper volume", args[1], beepers)
		if err != nil {
			s.fail(err)
			return
		}
		if err := s.mgr.SetBeeperConfig(id, b); err != nil {
			s.fail(err)
			return
		}
	}
	b, err := s.mgr.BeeperConfig(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Beeper: %s\n", b)
}

func (s *Shell) cmdBatch(args []string) {
	id, ok := s.readerArg(args, "batch <reader> [disable|auto|enable]")
	if !ok {
		return
	}
	if len(args) > 1 {
		m, err := parseEnum("batch mode", args[1], batchModes)
		if err != nil {
			s.fail(err)
			return
		}
		if err := s.mgr.SetBatchModeConfig(id, m); err != nil {
			s.fail(err)
			return
		}
	}
	m, err := s.mgr.BatchModeConfig(id)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Batch mode: %s\n", m)
}

func (s *Shell) cmdPreFilters(args []string) {
	id, ok := s.readerArg(args, "prefilters <reader> [clear]")
	if !ok {
		return
	}
	if optional(args, 1) == "clear" {
		if err := s.mgr.SetPreFilters(id, nil); err != nil {
			s.fail(err)
			return
		}
	}
	filters, err := s.mgr.PreFilters(id)
	if err != nil {
		s.fail(err)
		return
	}
	if len(filters) == 0 {
		s.printf("No pre-filters\n")
		return
	}
	for i, f := range filters {
		s.printf("  %d. %s %s bank=%s start=%d pattern=%s\n",
			i+1, f.Target, f.Action, f.MemoryBank, f.MaskStartPosition, f.MatchPattern)
	}
}

func (s *Shell) cmdSave(args []string) {
	id, ok := s.readerArg(args, "save <reader>")
	if !ok {
		return
	}
	if err := s.mgr.SaveConfig(id, true); err != nil {
		s.fail(err)
		return
	}
	s.printf("Settings saved as custom defaults\n")
}

func (s *Shell) cmdRestore(args []string) {
	id, ok := s.readerArg(args, "restore <reader> [factory]")
	if !ok {
		return
	}
	factory := optional(args, 1) == "factory"
	if err := s.mgr.RestoreConfig(id, factory); err != nil {
		s.fail(err)
		return
	}
	if factory {
		s.printf("Factory settings restored\n")
		return
	}
	s.printf("Saved settings restored\n")
}
