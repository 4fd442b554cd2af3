package sim

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// Antenna power limits in tenths of dBm.
const (
	minPower  = 0
	maxPower  = 270
	powerStep = 10
)

// maxPreFilters is the number of select records a reader holds.
const maxPreFilters = 2

var linkProfiles = []sdk.LinkProfile{
	{RFModeIndex: 0, DivideRatio: 1, BDR: 640000, Modulation: 0, FLModulation: 0, PIE: 1500, MinTari: 6250, MaxTari: 6250, StepTari: 0, SpectralMaskIndicator: 1},
	{RFModeIndex: 1, DivideRatio: 1, BDR: 320000, Modulation: 2, FLModulation: 0, PIE: 1500, MinTari: 12500, MaxTari: 12500, StepTari: 0, SpectralMaskIndicator: 2},
	{RFModeIndex: 2, DivideRatio: 1, BDR: 160000, Modulation: 3, FLModulation: 0, PIE: 2000, MinTari: 12500, MaxTari: 25000, StepTari: 6300, SpectralMaskIndicator: 3, EPCHAGTCConformance: true},
}

type region struct {
	code     string
	name     string
	channels []string
	hopping  bool
}

var regions = []region{
	{code: "USA", name: "United States", channels: []string{"902750", "903250", "903750", "904250", "904750"}, hopping: true},
	{code: "EU", name: "European Union", channels: []string{"865700", "866300", "866900", "867500"}, hopping: true},
	{code: "JP", name: "Japan", channels: []string{"916800", "918000", "919200", "920400"}, hopping: false},
}

func findRegion(code string) (region, bool) {
	for _, r := range regions {
		if r.code == code {
			return r, true
		}
	}
	return region{}, false
}

// GetSupportedLinkProfiles lists the RF modes.
func (s *SDK) GetSupportedLinkProfiles(readerID int32, profiles *[]sdk.LinkProfile, status *string) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, res := s.reader(readerID, status); res != sdk.ResultSuccess {
		return res
	}
	*profiles = slices.Clone(linkProfiles)
	return sdk.ResultSuccess
}

// GetAntennaConfiguration returns the antenna setting.
func (s *SDK) GetAntennaConfiguration(readerID int32, cfg *sdk.AntennaConfiguration, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.antenna })
}

// SetAntennaConfiguration validates power and link profile and stores the
// antenna setting.
func (s *SDK) SetAntennaConfiguration(readerID int32, cfg sdk.AntennaConfiguration, status *string) sdk.Result {
	if cfg.Power < minPower || cfg.Power > maxPower || cfg.Power%powerStep != 0 {
		return invalid(status, fmt.Sprintf("power %d outside %d..%d step %d", cfg.Power, minPower, maxPower, powerStep))
	}
	if int(cfg.LinkProfileIdx) < 0 || int(cfg.LinkProfileIdx) >= len(linkProfiles) {
		return invalid(status, fmt.Sprintf("unknown link profile %d", cfg.LinkProfileIdx))
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.antenna = cfg })
}

// GetDPOConfiguration returns the dynamic power setting.
func (s *SDK) GetDPOConfiguration(readerID int32, cfg *sdk.DynamicPowerConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.dpo })
}

// SetDPOConfiguration stores the dynamic power setting.
func (s *SDK) SetDPOConfiguration(readerID int32, cfg sdk.DynamicPowerConfig, status *string) sdk.Result {
	return s.set(readerID, status, func(r *readerState) { r.settings.dpo = cfg })
}

// GetSingulationConfiguration returns the singulation setting.
func (s *SDK) GetSingulationConfiguration(readerID int32, cfg *sdk.SingulationConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.singulation })
}

// SetSingulationConfiguration validates and stores the singulation setting.
func (s *SDK) SetSingulationConfiguration(readerID int32, cfg sdk.SingulationConfig, status *string) sdk.Result {
	if cfg.Session > 3 || cfg.SLFlag > 2 || cfg.InventoryState > 2 || cfg.TagPopulation < 0 {
		return invalid(status, "invalid singulation parameters")
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.singulation = cfg })
}

// GetTagReportConfiguration returns the report content setting.
func (s *SDK) GetTagReportConfiguration(readerID int32, cfg *sdk.TagReportConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.tagReport })
}

// SetTagReportConfiguration stores the report content setting.
func (s *SDK) SetTagReportConfiguration(readerID int32, cfg sdk.TagReportConfig, status *string) sdk.Result {
	return s.set(readerID, status, func(r *readerState) { r.settings.tagReport = cfg })
}

// SaveReaderConfiguration records the current settings as custom defaults.
// Without saveCustomDefaults it is a no-op, matching a save to volatile
// memory.
func (s *SDK) SaveReaderConfiguration(readerID int32, saveCustomDefaults bool, status *string) sdk.Result {
	return s.set(readerID, status, func(r *readerState) {
		if saveCustomDefaults {
			saved := r.settings.clone()
			r.saved = &saved
		}
	})
}

// RestoreReaderConfiguration restores factory settings, or the saved custom
// defaults when there are any and restoreFactoryDefaults is false.
func (s *SDK) RestoreReaderConfiguration(readerID int32, restoreFactoryDefaults bool, status *string) sdk.Result {
	return s.set(readerID, status, func(r *readerState) {
		if restoreFactoryDefaults || r.saved == nil {
			r.settings = factorySettings()
			return
		}
		r.settings = r.saved.clone()
	})
}

// GetReaderVersionInfo returns fixed firmware versions.
func (s *SDK) GetReaderVersionInfo(readerID int32, info *sdk.ReaderVersionInfo, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) {
		*info = sdk.ReaderVersionInfo{
			DeviceVersion:    "PAAFNS00-004-R00",
			BluetoothVersion: "BT 5.0",
			NGEVersion:       "3.2.16.0",
			PL33:             "PL33-1.0",
		}
	})
}

// GetReaderCapabilitiesInfo describes the simulated hardware.
func (s *SDK) GetReaderCapabilitiesInfo(readerID int32, info *sdk.ReaderCapabilitiesInfo, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) {
		*info = sdk.ReaderCapabilitiesInfo{
			SerialNumber:       r.cfg.SerialNumber,
			Model:              r.cfg.Name,
			Manufacturer:       "Zebra Technologies",
			ManufacturingDate:  "2023-04-11",
			ScannerName:        "SE4107",
			AsciiVersion:       "3.0",
			SelectFilterNum:    maxPreFilters,
			MinPower:           minPower,
			MaxPower:           maxPower,
			PowerStep:          powerStep,
			AirProtocolVersion: "EPC Gen2 V2",
			BDAddress:          fmt.Sprintf("84:24:8d:00:00:%02x", r.cfg.ID&0xff),
			MaxAccessSequence:  4,
		}
	})
}

// GetStartTriggerConfiguration returns the start trigger.
func (s *SDK) GetStartTriggerConfiguration(readerID int32, cfg *sdk.StartTriggerConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.start })
}

// SetStartTriggerConfiguration stores the start trigger.
func (s *SDK) SetStartTriggerConfiguration(readerID int32, cfg sdk.StartTriggerConfig, status *string) sdk.Result {
	if cfg.StartOnHandheldTrigger && cfg.TriggerType > sdk.TriggerTypeRelease {
		return invalid(status, "invalid trigger type")
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.start = cfg })
}

// GetStopTriggerConfiguration returns the stop trigger.
func (s *SDK) GetStopTriggerConfiguration(readerID int32, cfg *sdk.StopTriggerConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *cfg = r.settings.stop })
}

// SetStopTriggerConfiguration stores the stop trigger.
func (s *SDK) SetStopTriggerConfiguration(readerID int32, cfg sdk.StopTriggerConfig, status *string) sdk.Result {
	if cfg.StopOnHandheldTrigger && cfg.TriggerType > sdk.TriggerTypeRelease {
		return invalid(status, "invalid trigger type")
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.stop = cfg })
}

// GetSupportedRegions lists the regulatory regions.
func (s *SDK) GetSupportedRegions(readerID int32, out *[]sdk.RegionInfo, status *string) sdk.Result {
	return s.get(readerID, status, func(*readerState) {
		list := make([]sdk.RegionInfo, len(regions))
		for i, r := range regions {
			list[i] = sdk.RegionInfo{RegionCode: r.code, RegionName: r.name}
		}
		*out = list
	})
}

// GetRegionInfo returns the channels of a region.
func (s *SDK) GetRegionInfo(readerID int32, regionCode string, channels *[]string, hoppingConfigurable *bool, status *string) sdk.Result {
	reg, ok := findRegion(regionCode)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, res := s.reader(readerID, status); res != sdk.ResultSuccess {
		return res
	}
	if !ok {
		return invalid(status, fmt.Sprintf("unknown region %q", regionCode))
	}
	*channels = slices.Clone(reg.channels)
	*hoppingConfigurable = reg.hopping
	return sdk.ResultSuccess
}

// GetRegulatoryConfig returns the regulatory setting.
func (s *SDK) GetRegulatoryConfig(readerID int32, cfg *sdk.RegulatoryConfig, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) {
		*cfg = r.settings.regulatory
		cfg.EnabledChannelsList = slices.Clone(r.settings.regulatory.EnabledChannelsList)
	})
}

// SetRegulatoryConfig validates the region and its channels and stores the
// regulatory setting.
func (s *SDK) SetRegulatoryConfig(readerID int32, cfg sdk.RegulatoryConfig, status *string) sdk.Result {
	reg, ok := findRegion(cfg.RegionCode)
	if !ok {
		return invalid(status, fmt.Sprintf("unknown region %q", cfg.RegionCode))
	}
	for _, ch := range cfg.EnabledChannelsList {
		if !slices.Contains(reg.channels, ch) {
			return invalid(status, fmt.Sprintf("channel %s not allowed in %s", ch, reg.code))
		}
	}
	if cfg.Hopping == 1 && !reg.hopping {
		return invalid(status, fmt.Sprintf("hopping not configurable in %s", reg.code))
	}
	cfg.EnabledChannelsList = slices.Clone(cfg.EnabledChannelsList)
	return s.set(readerID, status, func(r *readerState) { r.settings.regulatory = cfg })
}

// GetBeeperConfig returns the beeper volume.
func (s *SDK) GetBeeperConfig(readerID int32, beeper *uint32, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *beeper = r.settings.beeper })
}

// SetBeeperConfig stores the beeper volume.
func (s *SDK) SetBeeperConfig(readerID int32, beeper uint32, status *string) sdk.Result {
	if beeper > 3 {
		return invalid(status, "invalid beeper volume")
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.beeper = beeper })
}

// GetPreFilters returns the select records.
func (s *SDK) GetPreFilters(readerID int32, filters *[]sdk.PreFilter, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *filters = slices.Clone(r.settings.prefilters) })
}

// SetPreFilters replaces the select records.
func (s *SDK) SetPreFilters(readerID int32, filters []sdk.PreFilter, status *string) sdk.Result {
	if len(filters) > maxPreFilters {
		return invalid(status, fmt.Sprintf("at most %d prefilters", maxPreFilters))
	}
	for _, f := range filters {
		if !isHex(f.MatchPattern) {
			return invalid(status, "match pattern is not hex")
		}
	}
	filters = slices.Clone(filters)
	return s.set(readerID, status, func(r *readerState) { r.settings.prefilters = filters })
}

// GetBatchModeConfig returns the batch mode.
func (s *SDK) GetBatchModeConfig(readerID int32, mode *uint32, status *string) sdk.Result {
	return s.get(readerID, status, func(r *readerState) { *mode = r.settings.batch })
}

// SetBatchModeConfig stores the batch mode.
func (s *SDK) SetBatchModeConfig(readerID int32, mode uint32, status *string) sdk.Result {
	if mode > sdk.BatchModeEnable {
		return invalid(status, "invalid batch mode")
	}
	return s.set(readerID, status, func(r *readerState) { r.settings.batch = mode })
}

// GetAttribute returns a stored attribute.
func (s *SDK) GetAttribute(readerID int32, attrNum int32, attr *sdk.Attribute, status *string) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	a, ok := r.attrs[attrNum]
	if !ok {
		setStatus(status, fmt.Sprintf("attribute %d not set", attrNum))
		return sdk.ResultNotSupported
	}
	*attr = a
	return sdk.ResultSuccess
}

// SetAttribute stores an attribute.
func (s *SDK) SetAttribute(readerID int32, attrNum int32, value int32, attrType string, status *string) sdk.Result {
	return s.set(readerID, status, func(r *readerState) {
		r.attrs[attrNum] = sdk.Attribute{
			AttrType:    attrType,
			AttrNum:     attrNum,
			AttrVal:     strconv.Itoa(int(value)),
			PropertyVal: value,
			Length:      4,
		}
	})
}

// get runs fn for a reader with a session.
func (s *SDK) get(readerID int32, status *string, fn func(*readerState)) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	fn(r)
	return sdk.ResultSuccess
}

// set runs fn for a reader that accepts configuration. Changes are refused
// while an operation runs.
func (s *SDK) set(readerID int32, status *string, fn func(*readerState)) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.configurable(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	if r.op != nil {
		setStatus(status, "operation in progress")
		return sdk.ResultResponseError
	}
	fn(r)
	return sdk.ResultSuccess
}

func invalid(status *string, msg string) sdk.Result {
	setStatus(status, msg)
	return sdk.ResultInvalidParams
}
