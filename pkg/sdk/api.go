package sdk

// API is the vendor SDK instance (srfidISdkApi).
//
// Methods ending in a status *string parameter may write a human-readable
// failure description into it. Implementations must tolerate a nil status
// pointer.
type API interface {
	SetDelegate(d Delegate) Result
	SDKVersion() string
	SetOperationalMode(mode int32) Result
	SubscribeForEvents(mask int32) Result
	UnsubscribeForEvents(mask int32) Result

	GetAvailableReadersList(readers *[]ReaderInfo) Result
	GetActiveReadersList(readers *[]ReaderInfo) Result
	EstablishCommunicationSession(readerID int32) Result
	TerminateCommunicationSession(readerID int32) Result
	EstablishASCIIConnection(readerID int32, password string) Result
	EnableAvailableReadersDetection(enable bool) Result
	EnableAutomaticSessionReestablishment(enable bool) Result

	StartRapidRead(readerID int32, report ReportConfig, access AccessConfig, status *string) Result
	StopRapidRead(readerID int32, status *string) Result
	StartInventory(readerID int32, bank uint32, report ReportConfig, access AccessConfig, status *string) Result
	StopInventory(readerID int32, status *string) Result

	GetSupportedLinkProfiles(readerID int32, profiles *[]LinkProfile, status *string) Result
	GetAntennaConfiguration(readerID int32, cfg *AntennaConfiguration, status *string) Result
	SetAntennaConfiguration(readerID int32, cfg AntennaConfiguration, status *string) Result
	GetDPOConfiguration(readerID int32, cfg *DynamicPowerConfig, status *string) Result
	SetDPOConfiguration(readerID int32, cfg DynamicPowerConfig, status *string) Result
	GetSingulationConfiguration(readerID int32, cfg *SingulationConfig, status *string) Result
	SetSingulationConfiguration(readerID int32, cfg SingulationConfig, status *string) Result
	GetTagReportConfiguration(readerID int32, cfg *TagReportConfig, status *string) Result
	SetTagReportConfiguration(readerID int32, cfg TagReportConfig, status *string) Result
	SaveReaderConfiguration(readerID int32, saveCustomDefaults bool, status *string) Result
	RestoreReaderConfiguration(readerID int32, restoreFactoryDefaults bool, status *string) Result
	GetReaderVersionInfo(readerID int32, info *ReaderVersionInfo, status *string) Result
	GetReaderCapabilitiesInfo(readerID int32, info *ReaderCapabilitiesInfo, status *string) Result
	GetStartTriggerConfiguration(readerID int32, cfg *StartTriggerConfig, status *string) Result
	SetStartTriggerConfiguration(readerID int32, cfg StartTriggerConfig, status *string) Result
	GetStopTriggerConfiguration(readerID int32, cfg *StopTriggerConfig, status *string) Result
	SetStopTriggerConfiguration(readerID int32, cfg StopTriggerConfig, status *string) Result
	GetSupportedRegions(readerID int32, regions *[]RegionInfo, status *string) Result
	GetRegionInfo(readerID int32, regionCode string, channels *[]string, hoppingConfigurable *bool, status *string) Result
	GetRegulatoryConfig(readerID int32, cfg *RegulatoryConfig, status *string) Result
	SetRegulatoryConfig(readerID int32, cfg RegulatoryConfig, status *string) Result
	GetBeeperConfig(readerID int32, beeper *uint32, status *string) Result
	SetBeeperConfig(readerID int32, beeper uint32, status *string) Result
	GetPreFilters(readerID int32, filters *[]PreFilter, status *string) Result
	SetPreFilters(readerID int32, filters []PreFilter, status *string) Result
	GetBatchModeConfig(readerID int32, mode *uint32, status *string) Result
	SetBatchModeConfig(readerID int32, mode uint32, status *string) Result

	StartTagLocationing(readerID int32, tagID string, status *string) Result
	StopTagLocationing(readerID int32, status *string) Result

	ReadTag(readerID int32, tagID string, tag *TagData, bank uint32, offset, length int16, password int64, status *string) Result
	ReadTagByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, bank uint32, offset, length int16, password int64, status *string) Result
	WriteTag(readerID int32, tagID string, tag *TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) Result
	WriteTagByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) Result
	KillTag(readerID int32, tagID string, tag *TagData, password int64, status *string) Result
	KillTagByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, password int64, status *string) Result
	LockTag(readerID int32, tagID string, tag *TagData, bank uint32, permission uint32, password int64, status *string) Result
	LockTagByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, bank uint32, permission uint32, password int64, status *string) Result
	BlockErase(readerID int32, tagID string, tag *TagData, bank uint32, offset, length int16, password int64, status *string) Result
	BlockEraseByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, bank uint32, offset, length int16, password int64, status *string) Result
	BlockPermaLock(readerID int32, tagID string, tag *TagData, bank uint32, doLock bool, blockPtr, blockRange int16, blockMask string, password int64, status *string) Result
	BlockPermaLockByCriteria(readerID int32, criteria AccessCriteria, tag *TagData, bank uint32, doLock bool, blockPtr, blockRange int16, blockMask string, password int64, status *string) Result

	RequestBatteryStatus(readerID int32) Result
	GetTags(readerID int32, status *string) Result
	GetConfigurations() Result
	PurgeTags(readerID int32, status *string) Result
	GetAttribute(readerID int32, attrNum int32, attr *Attribute, status *string) Result
	SetAttribute(readerID int32, attrNum int32, value int32, attrType string, status *string) Result
	SetAccessCommandOperationWaitTimeout(readerID int32, timeoutMs int32) Result
	LocateReader(readerID int32, enabled bool, status *string) Result
}

// Delegate receives asynchronous notifications from the SDK
// (srfidISdkApiDelegate). Callbacks may arrive on any goroutine.
type Delegate interface {
	EventReaderAppeared(reader ReaderInfo)
	EventReaderDisappeared(readerID int32)
	EventCommunicationSessionEstablished(reader ReaderInfo)
	EventCommunicationSessionTerminated(readerID int32)
	EventReadNotify(readerID int32, tag TagData)
	// EventStatusNotify carries an optional payload; for the operation end
	// summary status it is an OperEndSummaryEvent.
	EventStatusNotify(readerID int32, event uint32, notification any)
	EventProximityNotify(readerID int32, proximityPercent int32)
	EventMultiProximityNotify(readerID int32, tag TagData)
	EventTriggerNotify(readerID int32, triggerEvent uint32)
	EventBatteryNotify(readerID int32, event BatteryEvent)
	EventWifiScan(readerID int32, entry WlanScanList)
}
