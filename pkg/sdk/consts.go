package sdk

// Event mask bits (SRFID_EVENT_MASK_*).
const (
	EventMaskReaderAppearance     int32 = 1 << 1
	EventMaskReaderDisappearance  int32 = 1 << 2
	EventMaskSessionEstablishment int32 = 1 << 3
	EventMaskSessionTermination   int32 = 1 << 4
	EventMaskRead                 int32 = 1 << 5
	EventMaskStatus               int32 = 1 << 6
	EventMaskProximity            int32 = 1 << 7
	EventMaskTrigger              int32 = 1 << 8
	EventMaskBattery              int32 = 1 << 9
	EventMaskStatusOperEndSummary int32 = 1 << 10
	EventMaskTemperature          int32 = 1 << 11
	EventMaskPower                int32 = 1 << 12
	EventMaskDatabase             int32 = 1 << 13
	EventMaskRadioError           int32 = 1 << 14
	EventMaskMultiProximity       int32 = 1 << 15
	EventMaskWifiScan             int32 = 1 << 16
)

// Status notification codes (SRFID_EVENT_STATUS_*).
const (
	EventStatusOperationStart      uint32 = 0x00
	EventStatusOperationStop       uint32 = 0x01
	EventStatusOperationBatchMode  uint32 = 0x02
	EventStatusOperationEndSummary uint32 = 0x03
	EventStatusTemperature         uint32 = 0x04
	EventStatusPower               uint32 = 0x05
)

// Memory banks (SRFID_MEMORYBANK_*).
const (
	MemoryBankEPC      uint32 = 0x01
	MemoryBankTID      uint32 = 0x02
	MemoryBankUser     uint32 = 0x04
	MemoryBankReserved uint32 = 0x08
	MemoryBankNone     uint32 = 0x10
)

// Access operation ordinals (SRFID_ACCESSOPERATIONCODE_*).
const (
	AccessOpRead           uint32 = 0
	AccessOpWrite          uint32 = 1
	AccessOpLock           uint32 = 2
	AccessOpKill           uint32 = 3
	AccessOpBlockWrite     uint32 = 4
	AccessOpBlockErase     uint32 = 5
	AccessOpBlockPermaLock uint32 = 7
	AccessOpNone           uint32 = 255
)

// Lock permissions (SRFID_ACCESSPERMISSION_*).
const (
	PermissionAccessible          uint32 = 0
	PermissionPermanent           uint32 = 1
	PermissionSecured             uint32 = 2
	PermissionAlwaysNotAccessible uint32 = 3
)

// Handheld trigger types and notifications.
const (
	TriggerTypePress   uint32 = 0
	TriggerTypeRelease uint32 = 1

	TriggerEventPressed  uint32 = 0
	TriggerEventReleased uint32 = 1
)

// Batch mode settings (SRFID_BATCHMODECONFIG_*).
const (
	BatchModeDisable uint32 = 0
	BatchModeAuto    uint32 = 1
	BatchModeEnable  uint32 = 2
)

// Operational modes (SRFID_OPMODE_*).
const (
	OpModeMFi  int32 = 1
	OpModeBTLE int32 = 2
	OpModeAll  int32 = 3
)
