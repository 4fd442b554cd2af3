package sim

import (
	"sync"
	"time"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

type opKind int

const (
	opInventory opKind = iota
	opRapidRead
	opLocate
)

func (k opKind) String() string {
	switch k {
	case opInventory:
		return "inventory"
	case opRapidRead:
		return "rapid read"
	case opLocate:
		return "locate"
	default:
		return "unknown"
	}
}

// operation is one running inventory, rapid read or tag locationing.
type operation struct {
	kind     opKind
	readerID int32
	bank     uint32
	report   sdk.ReportConfig
	target   string

	start      sdk.StartTriggerConfig
	stop       sdk.StopTriggerConfig
	batch      bool
	prefilters []sdk.PreFilter

	trigger chan uint32
	stopCh  chan struct{}
	done    chan struct{}
	once    sync.Once

	seen map[string]int16
}

func (op *operation) cancel() {
	op.once.Do(func() { close(op.stopCh) })
}

// StartInventory starts an inventory that reports bank contents alongside
// each tag unless bank is MemoryBankNone.
func (s *SDK) StartInventory(readerID int32, bank uint32, report sdk.ReportConfig, access sdk.AccessConfig, status *string) sdk.Result {
	if bank != sdk.MemoryBankNone && bank != sdk.MemoryBankEPC && bank != sdk.MemoryBankTID &&
		bank != sdk.MemoryBankUser && bank != sdk.MemoryBankReserved {
		return invalid(status, "invalid memory bank")
	}
	return s.startOperation(readerID, status, &operation{kind: opInventory, bank: bank, report: report}, access)
}

// StopInventory stops the running inventory and waits for its final
// notifications.
func (s *SDK) StopInventory(readerID int32, status *string) sdk.Result {
	return s.stopOperation(readerID, status, opInventory)
}

// StartRapidRead starts an inventory without memory bank reporting.
func (s *SDK) StartRapidRead(readerID int32, report sdk.ReportConfig, access sdk.AccessConfig, status *string) sdk.Result {
	return s.startOperation(readerID, status, &operation{kind: opRapidRead, bank: sdk.MemoryBankNone, report: report}, access)
}

// StopRapidRead stops the running rapid read.
func (s *SDK) StopRapidRead(readerID int32, status *string) sdk.Result {
	return s.stopOperation(readerID, status, opRapidRead)
}

// StartTagLocationing reports the proximity of one tag every round.
func (s *SDK) StartTagLocationing(readerID int32, tagID string, status *string) sdk.Result {
	if tagID == "" || !isHex(tagID) {
		return invalid(status, "invalid tag id")
	}
	return s.startOperation(readerID, status, &operation{kind: opLocate, target: tagID}, sdk.AccessConfig{})
}

// StopTagLocationing stops tag locationing.
func (s *SDK) StopTagLocationing(readerID int32, status *string) sdk.Result {
	return s.stopOperation(readerID, status, opLocate)
}

// GetTags delivers the reads buffered in batch mode.
func (s *SDK) GetTags(readerID int32, status *string) sdk.Result {
	s.mu.Lock()
	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		s.mu.Unlock()
		return res
	}
	buffered := r.buffered
	r.buffered = nil
	s.mu.Unlock()

	ns := make([]notification, len(buffered))
	for i, td := range buffered {
		ns[i] = read(readerID, td)
	}
	s.notify(ns...)
	return sdk.ResultSuccess
}

// PurgeTags drops the reads buffered in batch mode.
func (s *SDK) PurgeTags(readerID int32, status *string) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	r.buffered = nil
	return sdk.ResultSuccess
}

func (s *SDK) startOperation(readerID int32, status *string, op *operation, access sdk.AccessConfig) sdk.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		return res
	}
	if r.op != nil {
		setStatus(status, r.op.kind.String()+" in progress")
		return sdk.ResultResponseError
	}
	if access.Power != 0 && (access.Power < minPower || access.Power > maxPower) {
		setStatus(status, "access power out of range")
		return sdk.ResultInvalidParams
	}

	op.readerID = readerID
	op.start = r.settings.start
	op.stop = r.settings.stop
	op.batch = r.settings.batch == sdk.BatchModeEnable && op.kind != opLocate
	if access.DoSelect {
		op.prefilters = append([]sdk.PreFilter(nil), r.settings.prefilters...)
	}
	op.trigger = make(chan uint32, 4)
	op.stopCh = make(chan struct{})
	op.done = make(chan struct{})
	op.seen = make(map[string]int16)

	r.op = op
	s.wg.Add(1)
	go s.run(r, op)

	s.debugLog("operation started", "reader", readerID, "kind", op.kind.String())
	return sdk.ResultSuccess
}

func (s *SDK) stopOperation(readerID int32, status *string, kind opKind) sdk.Result {
	s.mu.Lock()
	r, res := s.reader(readerID, status)
	if res != sdk.ResultSuccess {
		s.mu.Unlock()
		return res
	}
	op := r.op
	s.mu.Unlock()

	if op == nil || op.kind != kind {
		return sdk.ResultSuccess
	}
	op.cancel()
	<-op.done
	return sdk.ResultSuccess
}

// run drives one operation until it is cancelled or a stop trigger fires.
func (s *SDK) run(r *readerState, op *operation) {
	defer s.wg.Done()
	defer close(op.done)

	if op.start.StartOnHandheldTrigger && !s.awaitStart(op) {
		s.finish(r, op, false, time.Time{}, 0, 0)
		return
	}

	ns := []notification{statusNote(op.readerID, sdk.EventStatusOperationStart, nil)}
	if op.batch {
		ns = append(ns, statusNote(op.readerID, sdk.EventStatusOperationBatchMode, nil))
	}
	s.notify(ns...)

	began := time.Now()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var timeout <-chan time.Time
	if op.kind != opLocate && op.stop.StopOnHandheldTrigger && op.stop.StopOnTimeout {
		timer := time.NewTimer(time.Duration(op.stop.StopTimeout) * time.Millisecond)
		defer timer.Stop()
		timeout = timer.C
	}

	var tags, rounds int32
loop:
	for {
		select {
		case <-op.stopCh:
			break loop
		case <-timeout:
			break loop
		case ev := <-op.trigger:
			if op.stop.StopOnHandheldTrigger && triggerFires(op.stop.TriggerType, ev) {
				break loop
			}
		case <-ticker.C:
			reads := s.round(r, op, began, rounds)
			rounds++
			if op.kind != opLocate {
				tags += int32(reads)
			}
			if op.kind != opLocate && op.stop.StopOnHandheldTrigger && stopLimitReached(op.stop, tags, rounds) {
				break loop
			}
		}
	}

	s.finish(r, op, true, began, tags, rounds)
}

// awaitStart blocks until the start trigger fires. It reports false when
// the operation was cancelled first.
func (s *SDK) awaitStart(op *operation) bool {
	for {
		select {
		case <-op.stopCh:
			return false
		case ev := <-op.trigger:
			if !triggerFires(op.start.TriggerType, ev) {
				continue
			}
			if op.start.StartDelay == 0 {
				return true
			}
			select {
			case <-op.stopCh:
				return false
			case <-time.After(time.Duration(op.start.StartDelay) * time.Millisecond):
				return true
			}
		}
	}
}

// round performs one inventory round and returns the number of tags read.
func (s *SDK) round(r *readerState, op *operation, began time.Time, n int32) int {
	s.mu.Lock()
	var ns []notification
	reads := 0
	elapsed := time.Since(began).Microseconds()

	if op.kind == opLocate {
		percent := int32(0)
		for _, t := range s.tags {
			if t.epc() == op.target {
				percent = proximity(t.rssi)
				break
			}
		}
		ns = append(ns, notification{sdk.EventMaskProximity, func(d sdk.Delegate) { d.EventProximityNotify(op.readerID, percent) }})
	} else {
		channels := r.settings.regulatory.EnabledChannelsList
		for _, t := range s.tags {
			if !t.matchesPreFilters(op.prefilters) {
				continue
			}
			reads++
			op.seen[t.epc()]++
			td := s.report(t, op, elapsed, int16(int(n)%max(len(channels), 1)))
			if op.batch {
				r.buffered = append(r.buffered, td)
				continue
			}
			ns = append(ns, read(op.readerID, td))
		}
	}
	s.mu.Unlock()

	s.notify(ns...)
	return reads
}

// report builds the TagData for one read, honouring the report
// configuration. Must be called with s.mu held.
func (s *SDK) report(t *tagState, op *operation, elapsedUs int64, channel int16) sdk.TagData {
	td := sdk.TagData{TagID: t.epc()}
	if op.report.IncFirstSeenTime {
		td.FirstSeenTime = elapsedUs
	}
	if op.report.IncLastSeenTime {
		td.LastSeenTime = elapsedUs
	}
	if op.report.IncPC {
		td.PC = t.pc()
	}
	if op.report.IncRSSI {
		td.PeakRSSI = t.rssi
	}
	if op.report.IncChannelIndex {
		td.ChannelIndex = channel
	}
	if op.report.IncTagSeenCount {
		td.TagSeenCount = op.seen[t.epc()]
	}
	if op.bank != sdk.MemoryBankNone {
		if data, ok := t.read(op.bank, 0, 0); ok {
			td.OpCode = &sdk.AccessOperationCode{Name: "READ", Ordinal: sdk.AccessOpRead}
			td.OperationSucceed = true
			td.MemoryBank = op.bank
			td.MemoryBankData = data
		}
	}
	return td
}

// finish clears the operation and delivers its closing notifications.
func (s *SDK) finish(r *readerState, op *operation, started bool, began time.Time, tags, rounds int32) {
	s.mu.Lock()
	if r.op == op {
		r.op = nil
	}
	s.mu.Unlock()

	s.debugLog("operation stopped", "reader", op.readerID, "kind", op.kind.String(), "tags", tags, "rounds", rounds)
	if !started {
		return
	}

	ns := []notification{statusNote(op.readerID, sdk.EventStatusOperationStop, nil)}
	if op.kind != opLocate {
		summary := sdk.OperEndSummaryEvent{
			TotalTimeUs: time.Since(began).Microseconds(),
			TotalTags:   tags,
			TotalRounds: rounds,
		}
		ns = append(ns, notification{sdk.EventMaskStatusOperEndSummary, func(d sdk.Delegate) {
			d.EventStatusNotify(op.readerID, sdk.EventStatusOperationEndSummary, summary)
		}})
	}
	s.notify(ns...)
}

func triggerFires(triggerType, event uint32) bool {
	switch triggerType {
	case sdk.TriggerTypePress:
		return event == sdk.TriggerEventPressed
	case sdk.TriggerTypeRelease:
		return event == sdk.TriggerEventReleased
	}
	return false
}

func stopLimitReached(stop sdk.StopTriggerConfig, tags, rounds int32) bool {
	if stop.StopOnTagCount && uint32(tags) >= stop.StopTagCount {
		return true
	}
	if stop.StopOnInventoryCount && uint32(rounds) >= stop.StopInventoryCount {
		return true
	}
	return false
}

// proximity maps RSSI to a locate percentage: -30 dBm and above is 100,
// -90 dBm and below is 0.
func proximity(rssi int16) int32 {
	p := (int32(rssi) + 90) * 100 / 60
	return min(max(p, 0), 100)
}

func read(readerID int32, td sdk.TagData) notification {
	return notification{sdk.EventMaskRead, func(d sdk.Delegate) { d.EventReadNotify(readerID, td) }}
}

func statusNote(readerID int32, event uint32, payload any) notification {
	return notification{sdk.EventMaskStatus, func(d sdk.Delegate) { d.EventStatusNotify(readerID, event, payload) }}
}
