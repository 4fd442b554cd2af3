package sim

import (
	"slices"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// FailNext makes the next vendor call that can fail return result, with
// message written to its status out-parameter when it has one.
func (s *SDK) FailNext(result sdk.Result, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = &failure{result: result, message: message}
}

// SimulateTrigger presses or releases the handheld trigger. It delivers a
// Trigger notification and feeds the event to a running operation's start
// and stop triggers.
func (s *SDK) SimulateTrigger(readerID int32, pressed bool) {
	event := sdk.TriggerEventReleased
	if pressed {
		event = sdk.TriggerEventPressed
	}

	s.mu.Lock()
	r, ok := s.readers[readerID]
	if !ok || !r.session {
		s.mu.Unlock()
		return
	}
	op := r.op
	s.mu.Unlock()

	s.notify(notification{sdk.EventMaskTrigger, func(d sdk.Delegate) { d.EventTriggerNotify(readerID, event) }})
	if op != nil {
		select {
		case op.trigger <- event:
		default:
		}
	}
}

// SimulateBattery changes the battery state and delivers a Battery
// notification with the given cause.
func (s *SDK) SimulateBattery(readerID int32, level int32, charging bool, cause string) {
	s.mu.Lock()
	r, ok := s.readers[readerID]
	if !ok {
		s.mu.Unlock()
		return
	}
	r.battery = level
	r.charging = charging
	session := r.session
	s.mu.Unlock()

	if session {
		s.notify(battery(readerID, sdk.BatteryEvent{PowerLevel: level, IsCharging: charging, EventCause: cause}))
	}
}

// SimulateDisappear takes a reader out of range. An open session is
// terminated first. The reader remembers the lost session for automatic
// re-establishment.
func (s *SDK) SimulateDisappear(readerID int32) {
	s.mu.Lock()
	r, ok := s.readers[readerID]
	if !ok || !r.present {
		s.mu.Unlock()
		return
	}
	op := r.op
	s.mu.Unlock()

	if op != nil {
		op.cancel()
		<-op.done
	}

	s.mu.Lock()
	hadSession := r.session
	r.present = false
	r.session = false
	r.ascii = false
	r.dropped = hadSession
	detection := s.detection
	s.mu.Unlock()

	var ns []notification
	if hadSession {
		ns = append(ns, sessionTerminated(readerID))
	}
	if detection {
		ns = append(ns, readerDisappeared(readerID))
	}
	s.debugLog("reader disappeared", "reader", readerID)
	s.notify(ns...)
}

// SimulateAppear brings a reader back into range. With automatic session
// re-establishment enabled, a session lost by SimulateDisappear is
// restored.
func (s *SDK) SimulateAppear(readerID int32) {
	s.mu.Lock()
	r, ok := s.readers[readerID]
	if !ok || r.present {
		s.mu.Unlock()
		return
	}
	r.present = true

	var ns []notification
	if s.detection {
		ns = append(ns, readerAppeared(r.info()))
	}
	if r.dropped && s.reestablish {
		r.session = true
		r.dropped = false
		ns = append(ns, sessionEstablished(r.info()))
	}
	s.mu.Unlock()

	s.debugLog("reader appeared", "reader", readerID)
	s.notify(ns...)
}

// SimulateWlanScan delivers one WifiScan notification per entry.
func (s *SDK) SimulateWlanScan(readerID int32, entries ...sdk.WlanScanList) {
	ns := make([]notification, len(entries))
	for i, e := range entries {
		ns[i] = notification{sdk.EventMaskWifiScan, func(d sdk.Delegate) { d.EventWifiScan(readerID, e) }}
	}
	s.notify(ns...)
}

// AddTag places a tag in the field.
func (s *SDK) AddTag(t Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = append(s.tags, newTagState(t))
}

// RemoveTag takes the tag with the given EPC out of the field.
func (s *SDK) RemoveTag(epc string) {
	epc = strings.ToUpper(epc)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = slices.DeleteFunc(s.tags, func(t *tagState) bool { return t.epc() == epc })
}

// Tags returns the EPCs of the tags in the field.
func (s *SDK) Tags() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	epcs := make([]string, len(s.tags))
	for i, t := range s.tags {
		epcs[i] = t.epc()
	}
	return epcs
}
