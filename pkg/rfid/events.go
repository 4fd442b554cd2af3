package rfid

// Event is a notification delivered by the SDK. The set of implementations
// is closed: ReaderAppeared, ReaderDisappeared, SessionEstablished,
// SessionTerminated, TagRead, StatusNotification, Proximity,
// MultiProximity, Trigger, Battery and WlanScan.
type Event interface {
	// ReaderID returns the reader the event concerns.
	ReaderID() int32
	// Kind returns a stable lower_snake name for the variant.
	Kind() string
	isEvent()
}

// Event kinds.
const (
	KindReaderAppeared     = "reader_appeared"
	KindReaderDisappeared  = "reader_disappeared"
	KindSessionEstablished = "session_established"
	KindSessionTerminated  = "session_terminated"
	KindRead               = "read"
	KindStatus             = "status"
	KindProximity          = "proximity"
	KindMultiProximity     = "multi_proximity"
	KindTrigger            = "trigger"
	KindBattery            = "battery"
	KindWlanScan           = "wlan_scan"
)

// ReaderAppeared reports a newly detected reader.
type ReaderAppeared struct {
	Info ReaderInfo
}

// ReaderDisappeared reports a reader that is no longer available.
type ReaderDisappeared struct {
	Reader int32
}

// SessionEstablished reports an established communication session.
type SessionEstablished struct {
	Info ReaderInfo
}

// SessionTerminated reports a lost or closed communication session.
type SessionTerminated struct {
	Reader int32
}

// TagRead carries one inventory or rapid read report.
type TagRead struct {
	Reader int32
	Tag    TagData
}

// StatusNotification reports an operation or hardware status change.
// Summary is set for EventStatusOperationEndSummary when the SDK supplied it.
type StatusNotification struct {
	Reader  int32
	Status  EventStatus
	Summary *OperEndSummary
}

// Proximity reports the signal strength of the located tag, in percent.
type Proximity struct {
	Reader  int32
	Percent int32
}

// MultiProximity reports a tag seen during multi-tag locationing.
type MultiProximity struct {
	Reader int32
	Tag    TagData
}

// Trigger reports a handheld trigger press or release.
type Trigger struct {
	Reader int32
	Event  TriggerEvent
}

// Battery reports the battery state of a reader.
type Battery struct {
	Reader int32
	Status BatteryStatus
}

// WlanScan reports one network found by a reader's Wi-Fi scan.
type WlanScan struct {
	Reader int32
	Entry  WlanScanEntry
}

func (e ReaderAppeared) ReaderID() int32     { return e.Info.ID }
func (e ReaderDisappeared) ReaderID() int32  { return e.Reader }
func (e SessionEstablished) ReaderID() int32 { return e.Info.ID }
func (e SessionTerminated) ReaderID() int32  { return e.Reader }
func (e TagRead) ReaderID() int32            { return e.Reader }
func (e StatusNotification) ReaderID() int32 { return e.Reader }
func (e Proximity) ReaderID() int32          { return e.Reader }
func (e MultiProximity) ReaderID() int32     { return e.Reader }
func (e Trigger) ReaderID() int32            { return e.Reader }
func (e Battery) ReaderID() int32            { return e.Reader }
func (e WlanScan) ReaderID() int32           { return e.Reader }

func (ReaderAppeared) Kind() string     { return KindReaderAppeared }
func (ReaderDisappeared) Kind() string  { return KindReaderDisappeared }
func (SessionEstablished) Kind() string { return KindSessionEstablished }
func (SessionTerminated) Kind() string  { return KindSessionTerminated }
func (TagRead) Kind() string            { return KindRead }
func (StatusNotification) Kind() string { return KindStatus }
func (Proximity) Kind() string          { return KindProximity }
func (MultiProximity) Kind() string     { return KindMultiProximity }
func (Trigger) Kind() string            { return KindTrigger }
func (Battery) Kind() string            { return KindBattery }
func (WlanScan) Kind() string           { return KindWlanScan }

func (ReaderAppeared) isEvent()     {}
func (ReaderDisappeared) isEvent()  {}
func (SessionEstablished) isEvent() {}
func (SessionTerminated) isEvent()  {}
func (TagRead) isEvent()            {}
func (StatusNotification) isEvent() {}
func (Proximity) isEvent()          {}
func (MultiProximity) isEvent()     {}
func (Trigger) isEvent()            {}
func (Battery) isEvent()            {}
func (WlanScan) isEvent()           {}
