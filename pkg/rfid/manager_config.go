package rfid

import "github.com/Syfaro/ZebraRfid/pkg/sdk"

// SupportedLinkProfiles lists the RF modes of a reader.
func (m *Manager) SupportedLinkProfiles(readerID int32) ([]LinkProfile, error) {
	var raw []sdk.LinkProfile
	err := m.callStatus("SupportedLinkProfiles", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetSupportedLinkProfiles(readerID, &raw, status)
	})
	if err != nil {
		return nil, err
	}
	profiles := make([]LinkProfile, len(raw))
	for i, p := range raw {
		profiles[i] = linkProfileFromSDK(p)
	}
	return profiles, nil
}

// AntennaConfig returns the antenna configuration of a reader.
func (m *Manager) AntennaConfig(readerID int32) (AntennaConfig, error) {
	var raw sdk.AntennaConfiguration
	err := m.callStatus("AntennaConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetAntennaConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return AntennaConfig{}, err
	}
	return antennaConfigFromSDK(raw), nil
}

// SetAntennaConfig replaces the antenna configuration of a reader.
func (m *Manager) SetAntennaConfig(readerID int32, cfg AntennaConfig) error {
	return m.callStatus("SetAntennaConfig", &readerID, map[string]any{"config": cfg}, func(api sdk.API, status *string) sdk.Result {
		return api.SetAntennaConfiguration(readerID, cfg.toSDK(), status)
	})
}

// DPOConfig returns the dynamic power optimisation setting.
func (m *Manager) DPOConfig(readerID int32) (DynamicPowerConfig, error) {
	var raw sdk.DynamicPowerConfig
	err := m.callStatus("DPOConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetDPOConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return DynamicPowerConfig{}, err
	}
	return dynamicPowerConfigFromSDK(raw), nil
}

// SetDPOConfig changes the dynamic power optimisation setting.
func (m *Manager) SetDPOConfig(readerID int32, cfg DynamicPowerConfig) error {
	return m.callStatus("SetDPOConfig", &readerID, map[string]any{"config": cfg}, func(api sdk.API, status *string) sdk.Result {
		return api.SetDPOConfiguration(readerID, cfg.toSDK(), status)
	})
}

// SingulationConfig returns the singulation configuration.
func (m *Manager) SingulationConfig(readerID int32) (SingulationConfig, error) {
	var raw sdk.SingulationConfig
	err := m.callStatus("SingulationConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetSingulationConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return SingulationConfig{}, err
	}
	return singulationConfigFromSDK(raw), nil
}

// SetSingulationConfig replaces the singulation configuration.
func (m *Manager) SetSingulationConfig(readerID int32, cfg SingulationConfig) error {
	return m.callStatus("SetSingulationConfig", &readerID, map[string]any{"config": cfg}, func(api sdk.API, status *string) sdk.Result {
		return api.SetSingulationConfiguration(readerID, cfg.toSDK(), status)
	})
}

// TagReportConfig returns the stored report content setting.
func (m *Manager) TagReportConfig(readerID int32) (TagReportConfig, error) {
	var raw sdk.TagReportConfig
	err := m.callStatus("TagReportConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetTagReportConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return TagReportConfig{}, err
	}
	return tagReportConfigFromSDK(raw), nil
}

// SetTagReportConfig replaces the stored report content setting.
func (m *Manager) SetTagReportConfig(readerID int32, cfg TagReportConfig) error {
	return m.callStatus("SetTagReportConfig", &readerID, map[string]any{"config": cfg}, func(api sdk.API, status *string) sdk.Result {
		return api.SetTagReportConfiguration(readerID, cfg.toSDK(), status)
	})
}

// SaveConfig persists the current configuration on the reader, optionally
// as its custom defaults.
func (m *Manager) SaveConfig(readerID int32, asCustomDefaults bool) error {
	return m.callStatus("SaveConfig", &readerID, map[string]any{"customDefaults": asCustomDefaults}, func(api sdk.API, status *string) sdk.Result {
		return api.SaveReaderConfiguration(readerID, asCustomDefaults, status)
	})
}

// RestoreConfig restores the saved configuration, or the factory defaults.
func (m *Manager) RestoreConfig(readerID int32, factoryDefaults bool) error {
	return m.callStatus("RestoreConfig", &readerID, map[string]any{"factoryDefaults": factoryDefaults}, func(api sdk.API, status *string) sdk.Result {
		return api.RestoreReaderConfiguration(readerID, factoryDefaults, status)
	})
}

// ReaderVersion returns the firmware versions of a reader.
func (m *Manager) ReaderVersion(readerID int32) (ReaderVersionInfo, error) {
	var raw sdk.ReaderVersionInfo
	err := m.callStatus("ReaderVersion", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetReaderVersionInfo(readerID, &raw, status)
	})
	if err != nil {
		return ReaderVersionInfo{}, err
	}
	return readerVersionInfoFromSDK(raw), nil
}

// ReaderCapabilities returns the hardware capabilities of a reader.
func (m *Manager) ReaderCapabilities(readerID int32) (ReaderCapabilities, error) {
	var raw sdk.ReaderCapabilitiesInfo
	err := m.callStatus("ReaderCapabilities", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetReaderCapabilitiesInfo(readerID, &raw, status)
	})
	if err != nil {
		return ReaderCapabilities{}, err
	}
	return readerCapabilitiesFromSDK(raw), nil
}

// StartTrigger returns the configured start trigger.
func (m *Manager) StartTrigger(readerID int32) (StartTrigger, error) {
	var raw sdk.StartTriggerConfig
	err := m.callStatus("StartTrigger", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetStartTriggerConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return nil, err
	}
	return startTriggerFromSDK(raw), nil
}

// SetStartTrigger replaces the start trigger. A nil trigger is rejected.
func (m *Manager) SetStartTrigger(readerID int32, trigger StartTrigger) error {
	if trigger == nil {
		err := &ParameterError{Name: "trigger"}
		m.traceRejected("SetStartTrigger", readerID, err)
		return err
	}
	return m.callStatus("SetStartTrigger", &readerID, map[string]any{"trigger": trigger}, func(api sdk.API, status *string) sdk.Result {
		return api.SetStartTriggerConfiguration(readerID, trigger.toSDK(), status)
	})
}

// StopTrigger returns the configured stop trigger.
func (m *Manager) StopTrigger(readerID int32) (StopTrigger, error) {
	var raw sdk.StopTriggerConfig
	err := m.callStatus("StopTrigger", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetStopTriggerConfiguration(readerID, &raw, status)
	})
	if err != nil {
		return nil, err
	}
	return stopTriggerFromSDK(raw), nil
}

// SetStopTrigger replaces the stop trigger. A nil trigger is rejected.
func (m *Manager) SetStopTrigger(readerID int32, trigger StopTrigger) error {
	if trigger == nil {
		err := &ParameterError{Name: "trigger"}
		m.traceRejected("SetStopTrigger", readerID, err)
		return err
	}
	return m.callStatus("SetStopTrigger", &readerID, map[string]any{"trigger": trigger}, func(api sdk.API, status *string) sdk.Result {
		return api.SetStopTriggerConfiguration(readerID, trigger.toSDK(), status)
	})
}

// SupportedRegions lists the regulatory regions a reader can operate in.
func (m *Manager) SupportedRegions(readerID int32) ([]SupportedRegion, error) {
	var raw []sdk.RegionInfo
	err := m.callStatus("SupportedRegions", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetSupportedRegions(readerID, &raw, status)
	})
	if err != nil {
		return nil, err
	}
	regions := make([]SupportedRegion, len(raw))
	for i, r := range raw {
		regions[i] = supportedRegionFromSDK(r)
	}
	return regions, nil
}

// RegionInfo returns the channels of a region.
func (m *Manager) RegionInfo(readerID int32, regionCode string) (RegionInfo, error) {
	var (
		channels []string
		hopping  bool
	)
	err := m.callStatus("RegionInfo", &readerID, map[string]any{"region": regionCode}, func(api sdk.API, status *string) sdk.Result {
		return api.GetRegionInfo(readerID, regionCode, &channels, &hopping, status)
	})
	if err != nil {
		return RegionInfo{}, err
	}
	return RegionInfo{Channels: append([]string(nil), channels...), HoppingConfigurable: hopping}, nil
}

// RegulatoryConfig returns the regulatory configuration.
func (m *Manager) RegulatoryConfig(readerID int32) (RegulatoryConfig, error) {
	var raw sdk.RegulatoryConfig
	err := m.callStatus("RegulatoryConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetRegulatoryConfig(readerID, &raw, status)
	})
	if err != nil {
		return RegulatoryConfig{}, err
	}
	return regulatoryConfigFromSDK(raw), nil
}

// SetRegulatoryConfig replaces the regulatory configuration.
func (m *Manager) SetRegulatoryConfig(readerID int32, cfg RegulatoryConfig) error {
	return m.callStatus("SetRegulatoryConfig", &readerID, map[string]any{"config": cfg}, func(api sdk.API, status *string) sdk.Result {
		return api.SetRegulatoryConfig(readerID, cfg.toSDK(), status)
	})
}

// BeeperConfig returns the beeper volume.
func (m *Manager) BeeperConfig(readerID int32) (BeeperConfig, error) {
	var raw uint32
	err := m.callStatus("BeeperConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetBeeperConfig(readerID, &raw, status)
	})
	if err != nil {
		return 0, err
	}
	return BeeperConfig(raw), nil
}

// SetBeeperConfig changes the beeper volume.
func (m *Manager) SetBeeperConfig(readerID int32, beeper BeeperConfig) error {
	return m.callStatus("SetBeeperConfig", &readerID, map[string]any{"beeper": beeper.String()}, func(api sdk.API, status *string) sdk.Result {
		return api.SetBeeperConfig(readerID, uint32(beeper), status)
	})
}

// PreFilters returns the configured prefilters.
func (m *Manager) PreFilters(readerID int32) ([]PreFilter, error) {
	var raw []sdk.PreFilter
	err := m.callStatus("PreFilters", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetPreFilters(readerID, &raw, status)
	})
	if err != nil {
		return nil, err
	}
	filters := make([]PreFilter, len(raw))
	for i, f := range raw {
		filters[i] = preFilterFromSDK(f)
	}
	return filters, nil
}

// SetPreFilters replaces the prefilters. An empty list clears them.
func (m *Manager) SetPreFilters(readerID int32, filters []PreFilter) error {
	raw := make([]sdk.PreFilter, len(filters))
	for i, f := range filters {
		raw[i] = f.toSDK()
	}
	return m.callStatus("SetPreFilters", &readerID, map[string]any{"count": len(filters)}, func(api sdk.API, status *string) sdk.Result {
		return api.SetPreFilters(readerID, raw, status)
	})
}

// BatchModeConfig returns the batch mode setting.
func (m *Manager) BatchModeConfig(readerID int32) (BatchModeConfig, error) {
	var raw uint32
	err := m.callStatus("BatchModeConfig", &readerID, nil, func(api sdk.API, status *string) sdk.Result {
		return api.GetBatchModeConfig(readerID, &raw, status)
	})
	if err != nil {
		return 0, err
	}
	return BatchModeConfig(raw), nil
}

// SetBatchModeConfig changes the batch mode setting.
func (m *Manager) SetBatchModeConfig(readerID int32, mode BatchModeConfig) error {
	return m.callStatus("SetBatchModeConfig", &readerID, map[string]any{"mode": mode.String()}, func(api sdk.API, status *string) sdk.Result {
		return api.SetBatchModeConfig(readerID, uint32(mode), status)
	})
}

// Attribute reads a raw reader attribute.
func (m *Manager) Attribute(readerID int32, number int32) (Attribute, error) {
	var raw sdk.Attribute
	err := m.callStatus("Attribute", &readerID, map[string]any{"number": number}, func(api sdk.API, status *string) sdk.Result {
		return api.GetAttribute(readerID, number, &raw, status)
	})
	if err != nil {
		return Attribute{}, err
	}
	return attributeFromSDK(raw), nil
}

// SetAttribute writes a raw reader attribute.
func (m *Manager) SetAttribute(readerID int32, number int32, value int32, attrType string) error {
	args := map[string]any{"number": number, "value": value, "type": attrType}
	return m.callStatus("SetAttribute", &readerID, args, func(api sdk.API, status *string) sdk.Result {
		return api.SetAttribute(readerID, number, value, attrType, status)
	})
}
