package rfid

import (
	"slices"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// memoryBankFromSDK maps an unknown bank to MemoryBankNone.
func memoryBankFromSDK(v uint32) MemoryBank {
	b := MemoryBank(v)
	if !b.Valid() {
		return MemoryBankNone
	}
	return b
}

// connectionTypeFromSDK maps an unknown transport to ConnectionTypeInvalid.
func connectionTypeFromSDK(v int32) ConnectionType {
	c := ConnectionType(v)
	if !c.Valid() {
		return ConnectionTypeInvalid
	}
	return c
}

// ReaderInfo describes a reader known to the SDK.
type ReaderInfo struct {
	ID             int32
	ConnectionType ConnectionType
	Active         bool
	Name           string
	Model          int32
}

func readerInfoFromSDK(r sdk.ReaderInfo) ReaderInfo {
	return ReaderInfo{
		ID:             r.ReaderID,
		ConnectionType: connectionTypeFromSDK(r.ConnectionType),
		Active:         r.Active,
		Name:           r.ReaderName,
		Model:          r.ReaderModel,
	}
}

func (r ReaderInfo) toSDK() sdk.ReaderInfo {
	return sdk.ReaderInfo{
		ReaderID:       r.ID,
		ConnectionType: int32(r.ConnectionType),
		Active:         r.Active,
		ReaderName:     r.Name,
		ReaderModel:    r.Model,
	}
}

// NamedAccessOperation identifies the access operation a tag report
// belongs to, with the name the SDK gave it.
type NamedAccessOperation struct {
	Code AccessOperationCode
	Name string
}

// TagData is one tag report, from an inventory or an access operation.
type TagData struct {
	EPC       string
	FirstSeen int64 // microseconds
	LastSeen  int64 // microseconds
	PC        string
	PeakRSSI  int16
	Phase     int16
	Channel   int16
	SeenCount int16

	// Operation is nil unless the report is the result of an access operation.
	Operation          *NamedAccessOperation
	OperationSucceeded bool
	OperationStatus    string

	// MemoryBank is nil when the report carries no bank.
	MemoryBank        *MemoryBank
	MemoryBankData    string // hex text
	PermaLockData     string
	ModifiedWordCount int32
	G2V2Result        string
	G2V2Response      string
	BrandIDStatus     bool
	Proximity         int32
}

// OperationFailed reports whether t names an access operation the tag
// reported as unsuccessful. A NONE operation never fails.
func (t TagData) OperationFailed() bool {
	return t.Operation != nil && t.Operation.Code != AccessOperationCodeNone && !t.OperationSucceeded
}

func tagDataFromSDK(t sdk.TagData) TagData {
	td := TagData{
		EPC:                t.TagID,
		FirstSeen:          t.FirstSeenTime,
		LastSeen:           t.LastSeenTime,
		PC:                 t.PC,
		PeakRSSI:           t.PeakRSSI,
		Phase:              t.PhaseInfo,
		Channel:            t.ChannelIndex,
		SeenCount:          t.TagSeenCount,
		OperationSucceeded: t.OperationSucceed,
		OperationStatus:    t.OperationStatus,
		MemoryBankData:     t.MemoryBankData,
		PermaLockData:      t.PermaLock,
		ModifiedWordCount:  t.ModifiedWordCount,
		G2V2Result:         t.G2V2Result,
		G2V2Response:       t.G2V2Response,
		BrandIDStatus:      t.BrandIDStatus,
		Proximity:          t.Proximity,
	}
	if t.OpCode != nil {
		td.Operation = &NamedAccessOperation{
			Code: AccessOperationCode(t.OpCode.Ordinal),
			Name: t.OpCode.Name,
		}
	}
	if t.MemoryBank != 0 {
		bank := memoryBankFromSDK(t.MemoryBank)
		td.MemoryBank = &bank
	}
	return td
}

func (t TagData) toSDK() sdk.TagData {
	out := sdk.TagData{
		TagID:             t.EPC,
		FirstSeenTime:     t.FirstSeen,
		LastSeenTime:      t.LastSeen,
		PC:                t.PC,
		PeakRSSI:          t.PeakRSSI,
		PhaseInfo:         t.Phase,
		ChannelIndex:      t.Channel,
		TagSeenCount:      t.SeenCount,
		OperationSucceed:  t.OperationSucceeded,
		OperationStatus:   t.OperationStatus,
		MemoryBankData:    t.MemoryBankData,
		PermaLock:         t.PermaLockData,
		ModifiedWordCount: t.ModifiedWordCount,
		G2V2Result:        t.G2V2Result,
		G2V2Response:      t.G2V2Response,
		BrandIDStatus:     t.BrandIDStatus,
		Proximity:         t.Proximity,
	}
	if t.Operation != nil {
		out.OpCode = &sdk.AccessOperationCode{Name: t.Operation.Name, Ordinal: uint32(t.Operation.Code)}
	}
	if t.MemoryBank != nil {
		out.MemoryBank = uint32(*t.MemoryBank)
	}
	return out
}

// TagFilter matches tags by a masked pattern in one memory bank.
type TagFilter struct {
	MemoryBank    MemoryBank
	StartPosition int16
	Data          string
	Mask          string
	MatchLength   int16
	DoMatch       bool
}

func tagFilterFromSDK(f sdk.TagFilter) TagFilter {
	return TagFilter{
		MemoryBank:    memoryBankFromSDK(f.MaskBank),
		StartPosition: f.MaskStartPos,
		Data:          f.Data,
		Mask:          f.Mask,
		MatchLength:   f.MatchLength,
		DoMatch:       f.DoMatch,
	}
}

func (f TagFilter) toSDK() sdk.TagFilter {
	return sdk.TagFilter{
		MaskBank:     uint32(f.MemoryBank),
		MaskStartPos: f.StartPosition,
		Data:         f.Data,
		Mask:         f.Mask,
		MatchLength:  f.MatchLength,
		DoMatch:      f.DoMatch,
	}
}

// AccessCriteria selects the tags an access operation applies to.
type AccessCriteria struct {
	Filter1 *TagFilter
	Filter2 *TagFilter
}

func accessCriteriaFromSDK(c sdk.AccessCriteria) AccessCriteria {
	var out AccessCriteria
	if c.TagFilter1 != nil {
		f := tagFilterFromSDK(*c.TagFilter1)
		out.Filter1 = &f
	}
	if c.TagFilter2 != nil {
		f := tagFilterFromSDK(*c.TagFilter2)
		out.Filter2 = &f
	}
	return out
}

func (c AccessCriteria) toSDK() sdk.AccessCriteria {
	var out sdk.AccessCriteria
	if c.Filter1 != nil {
		f := c.Filter1.toSDK()
		out.TagFilter1 = &f
	}
	if c.Filter2 != nil {
		f := c.Filter2.toSDK()
		out.TagFilter2 = &f
	}
	return out
}

// AccessConfig controls select and power for inventory operations.
type AccessConfig struct {
	Select bool
	Power  int16
}

func accessConfigFromSDK(c sdk.AccessConfig) AccessConfig {
	return AccessConfig{Select: c.DoSelect, Power: c.Power}
}

func (c AccessConfig) toSDK() sdk.AccessConfig {
	return sdk.AccessConfig{DoSelect: c.Select, Power: c.Power}
}

// ReportConfig selects the fields included in inventory reports.
type ReportConfig struct {
	FirstSeenTime bool
	LastSeenTime  bool
	PC            bool
	RSSI          bool
	Phase         bool
	ChannelIndex  bool
	SeenCount     bool
}

func reportConfigFromSDK(c sdk.ReportConfig) ReportConfig {
	return ReportConfig{
		FirstSeenTime: c.IncFirstSeenTime,
		LastSeenTime:  c.IncLastSeenTime,
		PC:            c.IncPC,
		RSSI:          c.IncRSSI,
		Phase:         c.IncPhase,
		ChannelIndex:  c.IncChannelIndex,
		SeenCount:     c.IncTagSeenCount,
	}
}

func (c ReportConfig) toSDK() sdk.ReportConfig {
	return sdk.ReportConfig{
		IncFirstSeenTime: c.FirstSeenTime,
		IncLastSeenTime:  c.LastSeenTime,
		IncPC:            c.PC,
		IncRSSI:          c.RSSI,
		IncPhase:         c.Phase,
		IncChannelIndex:  c.ChannelIndex,
		IncTagSeenCount:  c.SeenCount,
	}
}

// TagReportConfig is the persistent report content setting of a reader.
type TagReportConfig struct {
	FirstSeenTime bool
	LastSeenTime  bool
	PC            bool
	RSSI          bool
	Phase         bool
	ChannelIndex  bool
	SeenCount     bool
}

func tagReportConfigFromSDK(c sdk.TagReportConfig) TagReportConfig {
	return TagReportConfig{
		FirstSeenTime: c.IncFirstSeenTime,
		LastSeenTime:  c.IncLastSeenTime,
		PC:            c.IncPC,
		RSSI:          c.IncRSSI,
		Phase:         c.IncPhase,
		ChannelIndex:  c.IncChannelIdx,
		SeenCount:     c.IncTagSeenCount,
	}
}

func (c TagReportConfig) toSDK() sdk.TagReportConfig {
	return sdk.TagReportConfig{
		IncFirstSeenTime: c.FirstSeenTime,
		IncLastSeenTime:  c.LastSeenTime,
		IncPC:            c.PC,
		IncRSSI:          c.RSSI,
		IncPhase:         c.Phase,
		IncChannelIdx:    c.ChannelIndex,
		IncTagSeenCount:  c.SeenCount,
	}
}

// SingulationConfig controls which tags take part in an inventory round.
type SingulationConfig struct {
	SLFlag         SLFlag
	Session        Session
	InventoryState InventoryState
	TagPopulation  int32
}

func singulationConfigFromSDK(c sdk.SingulationConfig) SingulationConfig {
	return SingulationConfig{
		SLFlag:         SLFlag(c.SLFlag),
		Session:        Session(c.Session),
		InventoryState: InventoryState(c.InventoryState),
		TagPopulation:  c.TagPopulation,
	}
}

func (c SingulationConfig) toSDK() sdk.SingulationConfig {
	return sdk.SingulationConfig{
		SLFlag:         uint32(c.SLFlag),
		Session:        uint32(c.Session),
		InventoryState: uint32(c.InventoryState),
		TagPopulation:  c.TagPopulation,
	}
}

// LinkProfile is one RF mode a reader supports.
type LinkProfile struct {
	RFModeIndex           int32
	DivideRatio           DivideRatio
	BDR                   int32
	Modulation            Modulation
	ForwardLinkModulation ForwardLinkModulation
	PIE                   int32
	TariMin               int32
	TariMax               int32
	TariStep              int32
	SpectralMask          SpectralMaskIndicator
	EPCHAGTCConformance   bool
}

func linkProfileFromSDK(p sdk.LinkProfile) LinkProfile {
	return LinkProfile{
		RFModeIndex:           p.RFModeIndex,
		DivideRatio:           DivideRatio(p.DivideRatio),
		BDR:                   p.BDR,
		Modulation:            Modulation(p.Modulation),
		ForwardLinkModulation: ForwardLinkModulation(p.FLModulation),
		PIE:                   p.PIE,
		TariMin:               p.MinTari,
		TariMax:               p.MaxTari,
		TariStep:              p.StepTari,
		SpectralMask:          SpectralMaskIndicator(p.SpectralMaskIndicator),
		EPCHAGTCConformance:   p.EPCHAGTCConformance,
	}
}

func (p LinkProfile) toSDK() sdk.LinkProfile {
	return sdk.LinkProfile{
		RFModeIndex:           p.RFModeIndex,
		DivideRatio:           uint32(p.DivideRatio),
		BDR:                   p.BDR,
		Modulation:            uint32(p.Modulation),
		FLModulation:          uint32(p.ForwardLinkModulation),
		PIE:                   p.PIE,
		MinTari:               p.TariMin,
		MaxTari:               p.TariMax,
		StepTari:              p.TariStep,
		SpectralMaskIndicator: uint32(p.SpectralMask),
		EPCHAGTCConformance:   p.EPCHAGTCConformance,
	}
}

// AntennaConfig is the antenna power and link setting of a reader.
type AntennaConfig struct {
	Power            int16 // tenths of dBm
	LinkProfileIndex int16
	Tari             int32
	Select           bool
}

func antennaConfigFromSDK(c sdk.AntennaConfiguration) AntennaConfig {
	return AntennaConfig{
		Power:            c.Power,
		LinkProfileIndex: c.LinkProfileIdx,
		Tari:             c.Tari,
		Select:           c.DoSelect,
	}
}

func (c AntennaConfig) toSDK() sdk.AntennaConfiguration {
	return sdk.AntennaConfiguration{
		Power:          c.Power,
		LinkProfileIdx: c.LinkProfileIndex,
		Tari:           c.Tari,
		DoSelect:       c.Select,
	}
}

// DynamicPowerConfig toggles dynamic power optimisation.
type DynamicPowerConfig struct {
	Enabled bool
}

func dynamicPowerConfigFromSDK(c sdk.DynamicPowerConfig) DynamicPowerConfig {
	return DynamicPowerConfig{Enabled: c.DynamicPowerOptimizationEnabled}
}

func (c DynamicPowerConfig) toSDK() sdk.DynamicPowerConfig {
	return sdk.DynamicPowerConfig{DynamicPowerOptimizationEnabled: c.Enabled}
}

// RegulatoryConfig is the region and channel setting of a reader.
type RegulatoryConfig struct {
	RegionCode      string
	EnabledChannels []string
	Hopping         HoppingConfig
}

func regulatoryConfigFromSDK(c sdk.RegulatoryConfig) RegulatoryConfig {
	return RegulatoryConfig{
		RegionCode:      c.RegionCode,
		EnabledChannels: slices.Clone(c.EnabledChannelsList),
		Hopping:         HoppingConfig(c.Hopping),
	}
}

func (c RegulatoryConfig) toSDK() sdk.RegulatoryConfig {
	return sdk.RegulatoryConfig{
		RegionCode:          c.RegionCode,
		EnabledChannelsList: slices.Clone(c.EnabledChannels),
		Hopping:             uint32(c.Hopping),
	}
}

// SupportedRegion is an entry of the supported regions list.
type SupportedRegion struct {
	Code string
	Name string
}

func supportedRegionFromSDK(r sdk.RegionInfo) SupportedRegion {
	return SupportedRegion{Code: r.RegionCode, Name: r.RegionName}
}

// RegionInfo lists the channels of one region.
type RegionInfo struct {
	Channels            []string
	HoppingConfigurable bool
}

// PreFilter is a Gen2 select applied before inventory.
type PreFilter struct {
	Target            SelectTarget
	Action            SelectAction
	MemoryBank        MemoryBank
	MaskStartPosition int32
	MatchPattern      string
}

func preFilterFromSDK(f sdk.PreFilter) PreFilter {
	return PreFilter{
		Target:            SelectTarget(f.Target),
		Action:            SelectAction(f.Action),
		MemoryBank:        memoryBankFromSDK(f.MemoryBank),
		MaskStartPosition: f.MaskStartPos,
		MatchPattern:      f.MatchPattern,
	}
}

func (f PreFilter) toSDK() sdk.PreFilter {
	return sdk.PreFilter{
		Target:       uint32(f.Target),
		Action:       uint32(f.Action),
		MemoryBank:   uint32(f.MemoryBank),
		MaskStartPos: f.MaskStartPosition,
		MatchPattern: f.MatchPattern,
	}
}

// ReaderVersionInfo holds the firmware versions of a reader.
type ReaderVersionInfo struct {
	Device    string
	Bluetooth string
	NGE       string
	PL33      string
}

func readerVersionInfoFromSDK(v sdk.ReaderVersionInfo) ReaderVersionInfo {
	return ReaderVersionInfo{
		Device:    v.DeviceVersion,
		Bluetooth: v.BluetoothVersion,
		NGE:       v.NGEVersion,
		PL33:      v.PL33,
	}
}

// ReaderCapabilities describes the hardware of a reader.
type ReaderCapabilities struct {
	SerialNumber       string
	Model              string
	Manufacturer       string
	ManufacturingDate  string
	ScannerName        string
	ASCIIVersion       string
	SelectFilterNum    int32
	MinPower           int32
	MaxPower           int32
	PowerStep          int32
	AirProtocolVersion string
	BDAddress          string
	MaxAccessSequence  int32
}

func readerCapabilitiesFromSDK(c sdk.ReaderCapabilitiesInfo) ReaderCapabilities {
	return ReaderCapabilities{
		SerialNumber:       c.SerialNumber,
		Model:              c.Model,
		Manufacturer:       c.Manufacturer,
		ManufacturingDate:  c.ManufacturingDate,
		ScannerName:        c.ScannerName,
		ASCIIVersion:       c.AsciiVersion,
		SelectFilterNum:    c.SelectFilterNum,
		MinPower:           c.MinPower,
		MaxPower:           c.MaxPower,
		PowerStep:          c.PowerStep,
		AirProtocolVersion: c.AirProtocolVersion,
		BDAddress:          c.BDAddress,
		MaxAccessSequence:  c.MaxAccessSequence,
	}
}

// BatteryStatus is a battery report.
type BatteryStatus struct {
	Level    int32 // percent
	Charging bool
	Cause    string
}

func batteryStatusFromSDK(b sdk.BatteryEvent) BatteryStatus {
	return BatteryStatus{Level: b.PowerLevel, Charging: b.IsCharging, Cause: b.EventCause}
}

// OperEndSummary summarises a finished inventory.
type OperEndSummary struct {
	TotalTimeUs int64
	TotalTags   int32
	TotalRounds int32
}

func operEndSummaryFromSDK(s sdk.OperEndSummaryEvent) OperEndSummary {
	return OperEndSummary{TotalTimeUs: s.TotalTimeUs, TotalTags: s.TotalTags, TotalRounds: s.TotalRounds}
}

// Attribute is a raw reader attribute.
type Attribute struct {
	Type          string
	Number        int32
	Value         string
	Offset        int32
	PropertyValue int32
	Length        int32
}

func attributeFromSDK(a sdk.Attribute) Attribute {
	return Attribute{
		Type:          a.AttrType,
		Number:        a.AttrNum,
		Value:         a.AttrVal,
		Offset:        a.Offset,
		PropertyValue: a.PropertyVal,
		Length:        a.Length,
	}
}

// WlanScanEntry is one network seen during a Wi-Fi scan.
type WlanScanEntry struct {
	SSID       string
	Protocol   string
	Level      string
	MACAddress string
}

func wlanScanEntryFromSDK(w sdk.WlanScanList) WlanScanEntry {
	return WlanScanEntry{
		SSID:       w.WlanSSID,
		Protocol:   w.WlanProtocol,
		Level:      w.WlanLevel,
		MACAddress: w.WlanMacAddress,
	}
}
