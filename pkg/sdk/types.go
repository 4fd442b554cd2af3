package sdk

// Result is the SRFID_RESULT code returned by every vendor call.
type Result uint32

// Result codes reported by the vendor SDK.
const (
	ResultSuccess                 Result = 0
	ResultFailure                 Result = 1
	ResultReaderNotAvailable      Result = 2
	ResultInvalidParams           Result = 4
	ResultResponseTimeout         Result = 5
	ResultNotSupported            Result = 6
	ResultResponseError           Result = 7
	ResultWrongASCIIPassword      Result = 8
	ResultASCIIConnectionRequired Result = 9
)

// ReaderInfo is srfidReaderInfo.
type ReaderInfo struct {
	ReaderID       int32
	ConnectionType int32
	Active         bool
	ReaderName     string
	ReaderModel    int32
}

// AccessOperationCode is srfidAccessOperationCode.
type AccessOperationCode struct {
	Name    string
	Ordinal uint32
}

// TagData is srfidTagData. OpCode is nil when the tag was not the subject
// of an access operation.
type TagData struct {
	TagID             string
	FirstSeenTime     int64
	LastSeenTime      int64
	PC                string
	PeakRSSI          int16
	PhaseInfo         int16
	ChannelIndex      int16
	TagSeenCount      int16
	OpCode            *AccessOperationCode
	OperationSucceed  bool
	OperationStatus   string
	MemoryBank        uint32
	MemoryBankData    string
	PermaLock         string
	ModifiedWordCount int32
	G2V2Result        string
	G2V2Response      string
	BrandIDStatus     bool
	Proximity         int32
}

// TagFilter is srfidTagFilter.
type TagFilter struct {
	MaskBank     uint32
	MaskStartPos int16
	Data         string
	Mask         string
	MatchLength  int16
	DoMatch      bool
}

// AccessCriteria is srfidAccessCriteria.
type AccessCriteria struct {
	TagFilter1 *TagFilter
	TagFilter2 *TagFilter
}

// AccessConfig is srfidAccessConfig.
type AccessConfig struct {
	DoSelect bool
	Power    int16
}

// ReportConfig is srfidReportConfig.
type ReportConfig struct {
	IncFirstSeenTime bool
	IncLastSeenTime  bool
	IncPC            bool
	IncRSSI          bool
	IncPhase         bool
	IncChannelIndex  bool
	IncTagSeenCount  bool
}

// TagReportConfig is srfidTagReportConfig.
type TagReportConfig struct {
	IncFirstSeenTime bool
	IncLastSeenTime  bool
	IncPC            bool
	IncRSSI          bool
	IncPhase         bool
	IncChannelIdx    bool
	IncTagSeenCount  bool
}

// SingulationConfig is srfidSingulationConfig.
type SingulationConfig struct {
	SLFlag         uint32
	Session        uint32
	InventoryState uint32
	TagPopulation  int32
}

// LinkProfile is srfidLinkProfile.
type LinkProfile struct {
	RFModeIndex           int32
	DivideRatio           uint32
	BDR                   int32
	Modulation            uint32
	FLModulation          uint32
	PIE                   int32
	MinTari               int32
	MaxTari               int32
	StepTari              int32
	SpectralMaskIndicator uint32
	EPCHAGTCConformance   bool
}

// AntennaConfiguration is srfidAntennaConfiguration.
type AntennaConfiguration struct {
	Power          int16
	LinkProfileIdx int16
	Tari           int32
	DoSelect       bool
}

// DynamicPowerConfig is srfidDynamicPowerConfig.
type DynamicPowerConfig struct {
	DynamicPowerOptimizationEnabled bool
}

// StartTriggerConfig is srfidStartTriggerConfig.
type StartTriggerConfig struct {
	StartOnHandheldTrigger bool
	TriggerType            uint32
	StartDelay             uint32
	RepeatMonitoring       bool
}

// StopTriggerConfig is srfidStopTriggerConfig.
type StopTriggerConfig struct {
	StopOnHandheldTrigger bool
	TriggerType           uint32
	StopOnTagCount        bool
	StopTagCount          uint32
	StopOnTimeout         bool
	StopTimeout           uint32
	StopOnInventoryCount  bool
	StopInventoryCount    uint32
	StopOnAccessCount     bool
	StopAccessCount       uint32
}

// ReaderVersionInfo is srfidReaderVersionInfo.
type ReaderVersionInfo struct {
	DeviceVersion    string
	BluetoothVersion string
	NGEVersion       string
	PL33             string
}

// RegionInfo is srfidRegionInfo as returned by the supported regions list.
type RegionInfo struct {
	RegionCode string
	RegionName string
}

// RegulatoryConfig is srfidRegulatoryConfig.
type RegulatoryConfig struct {
	RegionCode          string
	EnabledChannelsList []string
	Hopping             uint32
}

// PreFilter is srfidPreFilter.
type PreFilter struct {
	Target       uint32
	Action       uint32
	MemoryBank   uint32
	MaskStartPos int32
	MatchPattern string
}

// ReaderCapabilitiesInfo is srfidReaderCapabilitiesInfo.
type ReaderCapabilitiesInfo struct {
	SerialNumber       string
	Model              string
	Manufacturer       string
	ManufacturingDate  string
	ScannerName        string
	AsciiVersion       string
	SelectFilterNum    int32
	MinPower           int32
	MaxPower           int32
	PowerStep          int32
	AirProtocolVersion string
	BDAddress          string
	MaxAccessSequence  int32
}

// BatteryEvent is srfidBatteryEvent.
type BatteryEvent struct {
	PowerLevel int32
	IsCharging bool
	EventCause string
}

// OperEndSummaryEvent is srfidOperEndSummaryEvent. It arrives as the
// notification payload of an operation-end-summary status callback.
type OperEndSummaryEvent struct {
	TotalTimeUs int64
	TotalTags   int32
	TotalRounds int32
}

// Attribute is srfidAttribute.
type Attribute struct {
	AttrType    string
	AttrNum     int32
	AttrVal     string
	Offset      int32
	PropertyVal int32
	Length      int32
}

// WlanScanList is srfidWlanScanList.
type WlanScanList struct {
	WlanSSID       string
	WlanProtocol   string
	WlanLevel      string
	WlanMacAddress string
}
