package transport

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// EventMessage is the JSON document published for every event.
type EventMessage struct {
	Reader int32  `json:"reader"`
	Kind   string `json:"kind"`
	Data   any    `json:"data,omitempty"`
}

// TagMessage is the JSON form of rfid.TagData.
type TagMessage struct {
	EPC       string `json:"epc"`
	PC        string `json:"pc,omitempty"`
	RSSI      int16  `json:"rssi"`
	Phase     int16  `json:"phase,omitempty"`
	Channel   int16  `json:"channel,omitempty"`
	SeenCount int16  `json:"seen_count,omitempty"`
	FirstSeen int64  `json:"first_seen_us,omitempty"`
	LastSeen  int64  `json:"last_seen_us,omitempty"`

	Operation       string `json:"operation,omitempty"`
	Succeeded       *bool  `json:"succeeded,omitempty"`
	OperationStatus string `json:"operation_status,omitempty"`

	MemoryBank     string `json:"memory_bank,omitempty"`
	MemoryBankData string `json:"memory_bank_data,omitempty"`
	Proximity      int32  `json:"proximity,omitempty"`
}

// NewTagMessage converts a tag report.
func NewTagMessage(t rfid.TagData) TagMessage {
	m := TagMessage{
		EPC:            t.EPC,
		PC:             t.PC,
		RSSI:           t.PeakRSSI,
		Phase:          t.Phase,
		Channel:        t.Channel,
		SeenCount:      t.SeenCount,
		FirstSeen:      t.FirstSeen,
		LastSeen:       t.LastSeen,
		MemoryBankData: t.MemoryBankData,
		Proximity:      t.Proximity,
	}
	if t.Operation != nil {
		m.Operation = t.Operation.Name
		ok := t.OperationSucceeded
		m.Succeeded = &ok
		m.OperationStatus = t.OperationStatus
	}
	if t.MemoryBank != nil {
		m.MemoryBank = t.MemoryBank.String()
	}
	return m
}

type readerMessage struct {
	Name           string `json:"name"`
	Model          int32  `json:"model"`
	ConnectionType string `json:"connection_type"`
	Active         bool   `json:"active"`
}

type statusMessage struct {
	Status      string `json:"status"`
	TotalTimeUs int64  `json:"total_time_us,omitempty"`
	TotalTags   int32  `json:"total_tags,omitempty"`
	TotalRounds int32  `json:"total_rounds,omitempty"`
}

type proximityMessage struct {
	Percent int32 `json:"percent"`
}

type triggerMessage struct {
	Event string `json:"event"`
}

type batteryMessage struct {
	Level    int32  `json:"level"`
	Charging bool   `json:"charging"`
	Cause    string `json:"cause,omitempty"`
}

type wlanMessage struct {
	SSID       string `json:"ssid"`
	Protocol   string `json:"protocol,omitempty"`
	Level      string `json:"level,omitempty"`
	MACAddress string `json:"mac,omitempty"`
}

// EventTopic returns the topic suffix <readerID>/<kind> for ev.
func EventTopic(ev rfid.Event) string {
	return strconv.Itoa(int(ev.ReaderID())) + "/" + ev.Kind()
}

// EncodeEvent returns the topic suffix and JSON payload for ev.
func EncodeEvent(ev rfid.Event) (string, []byte, error) {
	msg := EventMessage{Reader: ev.ReaderID(), Kind: ev.Kind()}

	switch e := ev.(type) {
	case rfid.ReaderAppeared:
		msg.Data = newReaderMessage(e.Info)
	case rfid.SessionEstablished:
		msg.Data = newReaderMessage(e.Info)
	case rfid.ReaderDisappeared, rfid.SessionTerminated:
	case rfid.TagRead:
		msg.Data = NewTagMessage(e.Tag)
	case rfid.MultiProximity:
		msg.Data = NewTagMessage(e.Tag)
	case rfid.StatusNotification:
		s := statusMessage{Status: e.Status.String()}
		if e.Summary != nil {
			s.TotalTimeUs = e.Summary.TotalTimeUs
			s.TotalTags = e.Summary.TotalTags
			s.TotalRounds = e.Summary.TotalRounds
		}
		msg.Data = s
	case rfid.Proximity:
		msg.Data = proximityMessage{Percent: e.Percent}
	case rfid.Trigger:
		msg.Data = triggerMessage{Event: e.Event.String()}
	case rfid.Battery:
		msg.Data = batteryMessage{Level: e.Status.Level, Charging: e.Status.Charging, Cause: e.Status.Cause}
	case rfid.WlanScan:
		msg.Data = wlanMessage{
			SSID:       e.Entry.SSID,
			Protocol:   e.Entry.Protocol,
			Level:      e.Entry.Level,
			MACAddress: e.Entry.MACAddress,
		}
	default:
		return "", nil, fmt.Errorf("transport: unsupported event %T", ev)
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s event: %w", msg.Kind, err)
	}
	return EventTopic(ev), payload, nil
}

func newReaderMessage(info rfid.ReaderInfo) readerMessage {
	return readerMessage{
		Name:           info.Name,
		Model:          info.Model,
		ConnectionType: info.ConnectionType.String(),
		Active:         info.Active,
	}
}
