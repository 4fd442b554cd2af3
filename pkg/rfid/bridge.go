package rfid

import (
	"log/slog"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/log"
	"github.com/Syfaro/ZebraRfid/pkg/sdk"
	"github.com/Syfaro/ZebraRfid/pkg/subscription"
)

// bridge is the sdk.Delegate registered by Manager.Start. Each callback is
// translated into exactly one Event and published to the hub before the
// callback returns, so subscribers observe callback order.
//
// The bridge never takes the Manager's command lock.
type bridge struct {
	hub       *subscription.Hub[Event]
	trace     log.Logger
	sessionID string
	logger    *slog.Logger
}

func (b *bridge) EventReaderAppeared(reader sdk.ReaderInfo) {
	b.publish(ReaderAppeared{Info: readerInfoFromSDK(reader)})
}

func (b *bridge) EventReaderDisappeared(readerID int32) {
	b.publish(ReaderDisappeared{Reader: readerID})
}

func (b *bridge) EventCommunicationSessionEstablished(reader sdk.ReaderInfo) {
	b.publish(SessionEstablished{Info: readerInfoFromSDK(reader)})
}

func (b *bridge) EventCommunicationSessionTerminated(readerID int32) {
	b.publish(SessionTerminated{Reader: readerID})
}

func (b *bridge) EventReadNotify(readerID int32, tag sdk.TagData) {
	b.publish(TagRead{Reader: readerID, Tag: tagDataFromSDK(tag)})
}

func (b *bridge) EventStatusNotify(readerID int32, event uint32, notification any) {
	ev := StatusNotification{Reader: readerID, Status: EventStatus(event)}
	switch n := notification.(type) {
	case sdk.OperEndSummaryEvent:
		s := operEndSummaryFromSDK(n)
		ev.Summary = &s
	case *sdk.OperEndSummaryEvent:
		if n != nil {
			s := operEndSummaryFromSDK(*n)
			ev.Summary = &s
		}
	}
	b.publish(ev)
}

func (b *bridge) EventProximityNotify(readerID int32, proximityPercent int32) {
	b.publish(Proximity{Reader: readerID, Percent: proximityPercent})
}

func (b *bridge) EventMultiProximityNotify(readerID int32, tag sdk.TagData) {
	b.publish(MultiProximity{Reader: readerID, Tag: tagDataFromSDK(tag)})
}

func (b *bridge) EventTriggerNotify(readerID int32, triggerEvent uint32) {
	b.publish(Trigger{Reader: readerID, Event: TriggerEvent(triggerEvent)})
}

func (b *bridge) EventBatteryNotify(readerID int32, event sdk.BatteryEvent) {
	b.publish(Battery{Reader: readerID, Status: batteryStatusFromSDK(event)})
}

func (b *bridge) EventWifiScan(readerID int32, entry sdk.WlanScanList) {
	b.publish(WlanScan{Reader: readerID, Entry: wlanScanEntryFromSDK(entry)})
}

func (b *bridge) publish(ev Event) {
	if b.logger != nil {
		b.logger.Debug("sdk callback", "kind", ev.Kind(), "reader", ev.ReaderID())
	}
	if b.trace != nil {
		reader := ev.ReaderID()
		b.trace.Log(log.Event{
			Timestamp: time.Now(),
			SessionID: b.sessionID,
			Direction: log.DirectionIn,
			Layer:     log.LayerBridge,
			Category:  log.CategoryCallback,
			ReaderID:  &reader,
			Callback:  &log.CallbackEvent{Kind: ev.Kind(), Payload: ev},
		})
	}
	b.hub.Publish(ev)
}

// Compile-time interface satisfaction check.
var _ sdk.Delegate = (*bridge)(nil)
