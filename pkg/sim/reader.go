package sim

import (
	"slices"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

type readerState struct {
	cfg Reader

	present bool
	session bool
	ascii   bool

	// dropped is set when the reader disappeared with a session open, so
	// automatic re-establishment can restore it.
	dropped bool

	settings settings
	saved    *settings

	battery  int32
	charging bool

	op       *operation
	buffered []sdk.TagData

	attrs         map[int32]sdk.Attribute
	waitTimeoutMs int32
	locateBeep    bool
}

// settings is the persistent reader configuration.
type settings struct {
	antenna     sdk.AntennaConfiguration
	dpo         sdk.DynamicPowerConfig
	singulation sdk.SingulationConfig
	tagReport   sdk.TagReportConfig
	start       sdk.StartTriggerConfig
	stop        sdk.StopTriggerConfig
	regulatory  sdk.RegulatoryConfig
	beeper      uint32
	prefilters  []sdk.PreFilter
	batch       uint32
}

func factorySettings() settings {
	return settings{
		antenna:     sdk.AntennaConfiguration{Power: maxPower, LinkProfileIdx: 0, Tari: 25000},
		dpo:         sdk.DynamicPowerConfig{DynamicPowerOptimizationEnabled: true},
		singulation: sdk.SingulationConfig{SLFlag: 2, Session: 1, InventoryState: 0, TagPopulation: 30},
		tagReport:   sdk.TagReportConfig{IncPC: true, IncRSSI: true, IncTagSeenCount: true},
		stop:        sdk.StopTriggerConfig{},
		regulatory:  sdk.RegulatoryConfig{RegionCode: "USA", EnabledChannelsList: slices.Clone(regions[0].channels), Hopping: 1},
		beeper:      0,
		batch:       sdk.BatchModeDisable,
	}
}

func (st settings) clone() settings {
	st.regulatory.EnabledChannelsList = slices.Clone(st.regulatory.EnabledChannelsList)
	st.prefilters = slices.Clone(st.prefilters)
	return st
}

func newReaderState(cfg Reader) *readerState {
	battery := cfg.Battery
	if battery == 0 {
		battery = 100
	}
	return &readerState{
		cfg:      cfg,
		present:  true,
		settings: factorySettings(),
		battery:  battery,
		attrs:    make(map[int32]sdk.Attribute),
	}
}

func (r *readerState) info() sdk.ReaderInfo {
	return sdk.ReaderInfo{
		ReaderID:       r.cfg.ID,
		ConnectionType: r.cfg.ConnectionType,
		Active:         r.session,
		ReaderName:     r.cfg.Name,
		ReaderModel:    r.cfg.Model,
	}
}

// GetAvailableReadersList lists the present readers.
func (s *SDK) GetAvailableReadersList(readers *[]sdk.ReaderInfo) sdk.Result {
	return s.listReaders(readers, func(r *readerState) bool { return r.present })
}

// GetActiveReadersList lists the readers with a session.
func (s *SDK) GetActiveReadersList(readers *[]sdk.ReaderInfo) sdk.Result {
	return s.listReaders(readers, func(r *readerState) bool { return r.present && r.session })
}

func (s *SDK) listReaders(out *[]sdk.ReaderInfo, keep func(*readerState) bool) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.takeFailure(nil); ok {
		return r
	}

	list := make([]sdk.ReaderInfo, 0, len(s.order))
	for _, id := range s.order {
		if r := s.readers[id]; keep(r) {
			list = append(list, r.info())
		}
	}
	if out != nil {
		*out = list
	}
	return sdk.ResultSuccess
}

// EstablishCommunicationSession opens a session. Establishing an open
// session again succeeds without a callback.
func (s *SDK) EstablishCommunicationSession(readerID int32) sdk.Result {
	s.mu.Lock()
	if res, ok := s.takeFailure(nil); ok {
		s.mu.Unlock()
		return res
	}
	r, ok := s.readers[readerID]
	if !ok || !r.present {
		s.mu.Unlock()
		return sdk.ResultReaderNotAvailable
	}
	if r.session {
		s.mu.Unlock()
		return sdk.ResultSuccess
	}
	r.session = true
	r.dropped = false
	info := r.info()
	s.mu.Unlock()

	s.debugLog("session established", "reader", readerID)
	s.notify(sessionEstablished(info))
	return sdk.ResultSuccess
}

// TerminateCommunicationSession closes a session, stopping any running
// operation first.
func (s *SDK) TerminateCommunicationSession(readerID int32) sdk.Result {
	s.mu.Lock()
	if res, ok := s.takeFailure(nil); ok {
		s.mu.Unlock()
		return res
	}
	r, ok := s.readers[readerID]
	if !ok || !r.present || !r.session {
		s.mu.Unlock()
		return sdk.ResultReaderNotAvailable
	}
	op := r.op
	s.mu.Unlock()

	if op != nil {
		op.cancel()
		<-op.done
	}

	s.mu.Lock()
	r.session = false
	r.ascii = false
	r.dropped = false
	s.mu.Unlock()

	s.debugLog("session terminated", "reader", readerID)
	s.notify(sessionTerminated(readerID))
	return sdk.ResultSuccess
}

// EstablishASCIIConnection opens the ASCII channel when password matches.
func (s *SDK) EstablishASCIIConnection(readerID int32, password string) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, nil)
	if res != sdk.ResultSuccess {
		return res
	}
	if password != r.cfg.ASCIIPassword {
		return sdk.ResultWrongASCIIPassword
	}
	r.ascii = true
	return sdk.ResultSuccess
}

// EnableAvailableReadersDetection toggles appearance notifications. Turning
// it on announces every present reader.
func (s *SDK) EnableAvailableReadersDetection(enable bool) sdk.Result {
	s.mu.Lock()
	if res, ok := s.takeFailure(nil); ok {
		s.mu.Unlock()
		return res
	}
	wasEnabled := s.detection
	s.detection = enable

	var ns []notification
	if enable && !wasEnabled {
		for _, id := range s.order {
			if r := s.readers[id]; r.present {
				ns = append(ns, readerAppeared(r.info()))
			}
		}
	}
	s.mu.Unlock()

	s.notify(ns...)
	return sdk.ResultSuccess
}

// EnableAutomaticSessionReestablishment makes a reappearing reader regain
// the session it lost when it disappeared.
func (s *SDK) EnableAutomaticSessionReestablishment(enable bool) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res, ok := s.takeFailure(nil); ok {
		return res
	}
	s.reestablish = enable
	return sdk.ResultSuccess
}

// LocateReader toggles the locate beep.
func (s *SDK) LocateReader(readerID int32, enabled bool, status *string) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	r.locateBeep = enabled
	return sdk.ResultSuccess
}

// RequestBatteryStatus delivers a Battery notification with the current
// level.
func (s *SDK) RequestBatteryStatus(readerID int32) sdk.Result {
	s.mu.Lock()
	r, res := s.reader(readerID, nil)
	if res != sdk.ResultSuccess {
		s.mu.Unlock()
		return res
	}
	ev := sdk.BatteryEvent{PowerLevel: r.battery, IsCharging: r.charging, EventCause: "request"}
	s.mu.Unlock()

	s.notify(battery(readerID, ev))
	return sdk.ResultSuccess
}

// SetAccessCommandOperationWaitTimeout stores the access wait timeout.
func (s *SDK) SetAccessCommandOperationWaitTimeout(readerID int32, timeoutMs int32) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, nil)
	if res != sdk.ResultSuccess {
		return res
	}
	if timeoutMs < 0 {
		return sdk.ResultInvalidParams
	}
	r.waitTimeoutMs = timeoutMs
	return sdk.ResultSuccess
}

func readerAppeared(info sdk.ReaderInfo) notification {
	return notification{sdk.EventMaskReaderAppearance, func(d sdk.Delegate) { d.EventReaderAppeared(info) }}
}

func readerDisappeared(readerID int32) notification {
	return notification{sdk.EventMaskReaderDisappearance, func(d sdk.Delegate) { d.EventReaderDisappeared(readerID) }}
}

func sessionEstablished(info sdk.ReaderInfo) notification {
	return notification{sdk.EventMaskSessionEstablishment, func(d sdk.Delegate) { d.EventCommunicationSessionEstablished(info) }}
}

func sessionTerminated(readerID int32) notification {
	return notification{sdk.EventMaskSessionTermination, func(d sdk.Delegate) { d.EventCommunicationSessionTerminated(readerID) }}
}

func battery(readerID int32, ev sdk.BatteryEvent) notification {
	return notification{sdk.EventMaskBattery, func(d sdk.Delegate) { d.EventBatteryNotify(readerID, ev) }}
}
