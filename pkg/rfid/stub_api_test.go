package rfid

import (
	"github.com/stretchr/testify/mock"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// stubAPI is a testify spy over sdk.API. Every method records its call;
// tests configure results and out-parameters with On(...).Run(...).
type stubAPI struct {
	mock.Mock
}

func (s *stubAPI) SetDelegate(d sdk.Delegate) sdk.Result {
	return s.Called(d).Get(0).(sdk.Result)
}

func (s *stubAPI) SDKVersion() string {
	return s.Called().String(0)
}

func (s *stubAPI) SetOperationalMode(mode int32) sdk.Result {
	return s.Called(mode).Get(0).(sdk.Result)
}

func (s *stubAPI) SubscribeForEvents(mask int32) sdk.Result {
	return s.Called(mask).Get(0).(sdk.Result)
}

func (s *stubAPI) UnsubscribeForEvents(mask int32) sdk.Result {
	return s.Called(mask).Get(0).(sdk.Result)
}

func (s *stubAPI) GetAvailableReadersList(readers *[]sdk.ReaderInfo) sdk.Result {
	return s.Called(readers).Get(0).(sdk.Result)
}

func (s *stubAPI) GetActiveReadersList(readers *[]sdk.ReaderInfo) sdk.Result {
	return s.Called(readers).Get(0).(sdk.Result)
}

func (s *stubAPI) EstablishCommunicationSession(readerID int32) sdk.Result {
	return s.Called(readerID).Get(0).(sdk.Result)
}

func (s *stubAPI) TerminateCommunicationSession(readerID int32) sdk.Result {
	return s.Called(readerID).Get(0).(sdk.Result)
}

func (s *stubAPI) EstablishASCIIConnection(readerID int32, password string) sdk.Result {
	return s.Called(readerID, password).Get(0).(sdk.Result)
}

func (s *stubAPI) EnableAvailableReadersDetection(enable bool) sdk.Result {
	return s.Called(enable).Get(0).(sdk.Result)
}

func (s *stubAPI) EnableAutomaticSessionReestablishment(enable bool) sdk.Result {
	return s.Called(enable).Get(0).(sdk.Result)
}

func (s *stubAPI) StartRapidRead(readerID int32, report sdk.ReportConfig, access sdk.AccessConfig, status *string) sdk.Result {
	return s.Called(readerID, report, access, status).Get(0).(sdk.Result)
}

func (s *stubAPI) StopRapidRead(readerID int32, status *string) sdk.Result {
	return s.Called(readerID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) StartInventory(readerID int32, bank uint32, report sdk.ReportConfig, access sdk.AccessConfig, status *string) sdk.Result {
	return s.Called(readerID, bank, report, access, status).Get(0).(sdk.Result)
}

func (s *stubAPI) StopInventory(readerID int32, status *string) sdk.Result {
	return s.Called(readerID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetSupportedLinkProfiles(readerID int32, profiles *[]sdk.LinkProfile, status *string) sdk.Result {
	return s.Called(readerID, profiles, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetAntennaConfiguration(readerID int32, cfg *sdk.AntennaConfiguration, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetAntennaConfiguration(readerID int32, cfg sdk.AntennaConfiguration, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetDPOConfiguration(readerID int32, cfg *sdk.DynamicPowerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetDPOConfiguration(readerID int32, cfg sdk.DynamicPowerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetSingulationConfiguration(readerID int32, cfg *sdk.SingulationConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetSingulationConfiguration(readerID int32, cfg sdk.SingulationConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetTagReportConfiguration(readerID int32, cfg *sdk.TagReportConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetTagReportConfiguration(readerID int32, cfg sdk.TagReportConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SaveReaderConfiguration(readerID int32, saveCustomDefaults bool, status *string) sdk.Result {
	return s.Called(readerID, saveCustomDefaults, status).Get(0).(sdk.Result)
}

func (s *stubAPI) RestoreReaderConfiguration(readerID int32, restoreFactoryDefaults bool, status *string) sdk.Result {
	return s.Called(readerID, restoreFactoryDefaults, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetReaderVersionInfo(readerID int32, info *sdk.ReaderVersionInfo, status *string) sdk.Result {
	return s.Called(readerID, info, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetReaderCapabilitiesInfo(readerID int32, info *sdk.ReaderCapabilitiesInfo, status *string) sdk.Result {
	return s.Called(readerID, info, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetStartTriggerConfiguration(readerID int32, cfg *sdk.StartTriggerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetStartTriggerConfiguration(readerID int32, cfg sdk.StartTriggerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetStopTriggerConfiguration(readerID int32, cfg *sdk.StopTriggerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetStopTriggerConfiguration(readerID int32, cfg sdk.StopTriggerConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetSupportedRegions(readerID int32, regions *[]sdk.RegionInfo, status *string) sdk.Result {
	return s.Called(readerID, regions, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetRegionInfo(readerID int32, regionCode string, channels *[]string, hoppingConfigurable *bool, status *string) sdk.Result {
	return s.Called(readerID, regionCode, channels, hoppingConfigurable, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetRegulatoryConfig(readerID int32, cfg *sdk.RegulatoryConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetRegulatoryConfig(readerID int32, cfg sdk.RegulatoryConfig, status *string) sdk.Result {
	return s.Called(readerID, cfg, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetBeeperConfig(readerID int32, beeper *uint32, status *string) sdk.Result {
	return s.Called(readerID, beeper, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetBeeperConfig(readerID int32, beeper uint32, status *string) sdk.Result {
	return s.Called(readerID, beeper, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetPreFilters(readerID int32, filters *[]sdk.PreFilter, status *string) sdk.Result {
	return s.Called(readerID, filters, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetPreFilters(readerID int32, filters []sdk.PreFilter, status *string) sdk.Result {
	return s.Called(readerID, filters, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetBatchModeConfig(readerID int32, mode *uint32, status *string) sdk.Result {
	return s.Called(readerID, mode, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetBatchModeConfig(readerID int32, mode uint32, status *string) sdk.Result {
	return s.Called(readerID, mode, status).Get(0).(sdk.Result)
}

func (s *stubAPI) StartTagLocationing(readerID int32, tagID string, status *string) sdk.Result {
	return s.Called(readerID, tagID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) StopTagLocationing(readerID int32, status *string) sdk.Result {
	return s.Called(readerID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) ReadTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset int16, length int16, password int64, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, bank, offset, length, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) ReadTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset int16, length int16, password int64, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, bank, offset, length, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) WriteTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, bank, offset, data, password, blockWrite, status).Get(0).(sdk.Result)
}

func (s *stubAPI) WriteTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, bank, offset, data, password, blockWrite, status).Get(0).(sdk.Result)
}

func (s *stubAPI) KillTag(readerID int32, tagID string, tag *sdk.TagData, password int64, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) KillTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, password int64, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) LockTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, permission uint32, password int64, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, bank, permission, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) LockTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, permission uint32, password int64, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, bank, permission, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) BlockErase(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset int16, length int16, password int64, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, bank, offset, length, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) BlockEraseByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset int16, length int16, password int64, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, bank, offset, length, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) BlockPermaLock(readerID int32, tagID string, tag *sdk.TagData, bank uint32, doLock bool, blockPtr int16, blockRange int16, blockMask string, password int64, status *string) sdk.Result {
	return s.Called(readerID, tagID, tag, bank, doLock, blockPtr, blockRange, blockMask, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) BlockPermaLockByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, doLock bool, blockPtr int16, blockRange int16, blockMask string, password int64, status *string) sdk.Result {
	return s.Called(readerID, criteria, tag, bank, doLock, blockPtr, blockRange, blockMask, password, status).Get(0).(sdk.Result)
}

func (s *stubAPI) RequestBatteryStatus(readerID int32) sdk.Result {
	return s.Called(readerID).Get(0).(sdk.Result)
}

func (s *stubAPI) GetTags(readerID int32, status *string) sdk.Result {
	return s.Called(readerID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetConfigurations() sdk.Result {
	return s.Called().Get(0).(sdk.Result)
}

func (s *stubAPI) PurgeTags(readerID int32, status *string) sdk.Result {
	return s.Called(readerID, status).Get(0).(sdk.Result)
}

func (s *stubAPI) GetAttribute(readerID int32, attrNum int32, attr *sdk.Attribute, status *string) sdk.Result {
	return s.Called(readerID, attrNum, attr, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetAttribute(readerID int32, attrNum int32, value int32, attrType string, status *string) sdk.Result {
	return s.Called(readerID, attrNum, value, attrType, status).Get(0).(sdk.Result)
}

func (s *stubAPI) SetAccessCommandOperationWaitTimeout(readerID int32, timeoutMs int32) sdk.Result {
	return s.Called(readerID, timeoutMs).Get(0).(sdk.Result)
}

func (s *stubAPI) LocateReader(readerID int32, enabled bool, status *string) sdk.Result {
	return s.Called(readerID, enabled, status).Get(0).(sdk.Result)
}

// Compile-time interface satisfaction check.
var _ sdk.API = (*stubAPI)(nil)
