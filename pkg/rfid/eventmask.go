package rfid

import (
	"fmt"
	"strings"
)

// EventMask selects the notification categories the SDK delivers.
type EventMask int32

// Event categories.
const (
	EventMaskReaderAppearance     EventMask = 1 << 1
	EventMaskReaderDisappearance  EventMask = 1 << 2
	EventMaskSessionEstablishment EventMask = 1 << 3
	EventMaskSessionTermination   EventMask = 1 << 4
	EventMaskRead                 EventMask = 1 << 5
	EventMaskStatus               EventMask = 1 << 6
	EventMaskProximity            EventMask = 1 << 7
	EventMaskTrigger              EventMask = 1 << 8
	EventMaskBattery              EventMask = 1 << 9
	EventMaskOperationEndSummary  EventMask = 1 << 10
	EventMaskTemperature          EventMask = 1 << 11
	EventMaskPower                EventMask = 1 << 12
	EventMaskDatabase             EventMask = 1 << 13
	EventMaskRadioError           EventMask = 1 << 14
	EventMaskMultiProximity       EventMask = 1 << 15
	EventMaskWlanScan             EventMask = 1 << 16

	EventMaskAll = EventMaskReaderAppearance | EventMaskReaderDisappearance |
		EventMaskSessionEstablishment | EventMaskSessionTermination |
		EventMaskRead | EventMaskStatus | EventMaskProximity | EventMaskTrigger |
		EventMaskBattery | EventMaskOperationEndSummary | EventMaskTemperature |
		EventMaskPower | EventMaskDatabase | EventMaskRadioError |
		EventMaskMultiProximity | EventMaskWlanScan
)

var eventMaskNames = []struct {
	bit  EventMask
	name string
}{
	{EventMaskReaderAppearance, "reader_appearance"},
	{EventMaskReaderDisappearance, "reader_disappearance"},
	{EventMaskSessionEstablishment, "session_establishment"},
	{EventMaskSessionTermination, "session_termination"},
	{EventMaskRead, "read"},
	{EventMaskStatus, "status"},
	{EventMaskProximity, "proximity"},
	{EventMaskTrigger, "trigger"},
	{EventMaskBattery, "battery"},
	{EventMaskOperationEndSummary, "operation_end_summary"},
	{EventMaskTemperature, "temperature"},
	{EventMaskPower, "power"},
	{EventMaskDatabase, "database"},
	{EventMaskRadioError, "radio_error"},
	{EventMaskMultiProximity, "multi_proximity"},
	{EventMaskWlanScan, "wlan_scan"},
}

// Has reports whether every bit of other is set in m.
func (m EventMask) Has(other EventMask) bool {
	return m&other == other
}

// String returns the comma separated category names, "all" for
// EventMaskAll and "none" for an empty mask.
func (m EventMask) String() string {
	switch m {
	case 0:
		return "none"
	case EventMaskAll:
		return "all"
	}

	var names []string
	rest := m
	for _, n := range eventMaskNames {
		if m.Has(n.bit) {
			names = append(names, n.name)
			rest &^= n.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", int32(rest)))
	}
	return strings.Join(names, ",")
}

// ParseEventMask parses a comma separated list of category names as
// produced by String. "all" selects every category and "session" selects
// both session_establishment and session_termination.
func ParseEventMask(s string) (EventMask, error) {
	var mask EventMask
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		switch name {
		case "":
			continue
		case "all":
			mask |= EventMaskAll
			continue
		case "session":
			mask |= EventMaskSessionEstablishment | EventMaskSessionTermination
			continue
		case "none":
			continue
		}

		found := false
		for _, n := range eventMaskNames {
			if n.name == name {
				mask |= n.bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown event category %q", part)
		}
	}
	return mask, nil
}
