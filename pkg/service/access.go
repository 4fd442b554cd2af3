package service

import (
	"context"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// ReadTag runs a read through the manager and journals the outcome.
func (s *BridgeService) ReadTag(ctx context.Context, readerID int32, req rfid.ReadRequest) (rfid.TagData, error) {
	tag, err := s.mgr.ReadTag(readerID, req)
	s.journalAccess(ctx, readerID, "ReadTag", req.Tag, tag, err)
	return tag, err
}

// WriteTag runs a write through the manager and journals the outcome.
func (s *BridgeService) WriteTag(ctx context.Context, readerID int32, req rfid.WriteRequest) (rfid.TagData, error) {
	tag, err := s.mgr.WriteTag(readerID, req)
	s.journalAccess(ctx, readerID, "WriteTag", req.Tag, tag, err)
	return tag, err
}

// LockTag runs a lock through the manager and journals the outcome.
func (s *BridgeService) LockTag(ctx context.Context, readerID int32, req rfid.LockRequest) (rfid.TagData, error) {
	tag, err := s.mgr.LockTag(readerID, req)
	s.journalAccess(ctx, readerID, "LockTag", req.Tag, tag, err)
	return tag, err
}

// KillTag runs a kill through the manager and journals the outcome.
func (s *BridgeService) KillTag(ctx context.Context, readerID int32, req rfid.KillRequest) (rfid.TagData, error) {
	tag, err := s.mgr.KillTag(readerID, req)
	s.journalAccess(ctx, readerID, "KillTag", req.Tag, tag, err)
	return tag, err
}

func (s *BridgeService) journalAccess(ctx context.Context, readerID int32, op string, sel rfid.TagSelector, tag rfid.TagData, opErr error) {
	if s.journal == nil {
		return
	}
	var epc string
	if e, ok := sel.(rfid.EPCSelector); ok {
		epc = e.EPC
	}
	if err := s.journal.RecordAccess(ctx, readerID, op, epc, tag, opErr); err != nil {
		s.journalErrors.Add(1)
		s.logger.Warn("journal access failed", "op", op, "error", err)
		s.traceError(readerID, "journal "+op, err)
	}
}
