package rfid

import "github.com/Syfaro/ZebraRfid/pkg/sdk"

// TagSelector chooses the tag an access operation targets: either a single
// EPC (EPCSelector) or filter criteria (CriteriaSelector).
type TagSelector interface {
	isTagSelector()
}

// EPCSelector targets the tag with the given EPC.
type EPCSelector struct {
	EPC string
}

// CriteriaSelector targets tags matching the criteria.
type CriteriaSelector struct {
	Criteria AccessCriteria
}

func (EPCSelector) isTagSelector()      {}
func (CriteriaSelector) isTagSelector() {}

// TagByEPC returns a selector for one tag.
func TagByEPC(epc string) TagSelector {
	return EPCSelector{EPC: epc}
}

// TagByCriteria returns a selector for tags matching c.
func TagByCriteria(c AccessCriteria) TagSelector {
	return CriteriaSelector{Criteria: c}
}

// ReadRequest reads Length words from a memory bank.
type ReadRequest struct {
	Tag        TagSelector
	MemoryBank MemoryBank
	Offset     int16
	Length     int16

	// Password is the access password as hex text. Empty means "00".
	Password string
}

// WriteRequest writes hex Data into a memory bank.
type WriteRequest struct {
	Tag        TagSelector
	MemoryBank MemoryBank
	Offset     int16
	Data       string
	BlockWrite bool
	Password   string
}

// KillRequest permanently disables a tag. Password is the kill password.
type KillRequest struct {
	Tag      TagSelector
	Password string
}

// LockRequest changes the lock state of a memory bank.
type LockRequest struct {
	Tag        TagSelector
	MemoryBank MemoryBank
	Permission AccessPermission
	Password   string
}

// BlockEraseRequest erases Length words of a memory bank.
type BlockEraseRequest struct {
	Tag        TagSelector
	MemoryBank MemoryBank
	Offset     int16
	Length     int16
	Password   string
}

// BlockPermaLockRequest permanently locks, or queries, memory blocks.
// BlockMask is hex text with one bit per block.
type BlockPermaLockRequest struct {
	Tag          TagSelector
	MemoryBank   MemoryBank
	Lock         bool
	BlockPointer int16
	BlockRange   int16
	BlockMask    string
	Password     string
}

type (
	byEPCFunc      func(api sdk.API, epc string, out *sdk.TagData, password int64, status *string) sdk.Result
	byCriteriaFunc func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, password int64, status *string) sdk.Result
)

// ReadTag reads tag memory. The returned TagData carries the bank content
// in MemoryBankData.
func (m *Manager) ReadTag(readerID int32, req ReadRequest) (TagData, error) {
	args := map[string]any{"memoryBank": req.MemoryBank.String(), "offset": req.Offset, "length": req.Length}
	return m.access("ReadTag", readerID, req.Tag, req.Password, args, nil,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.ReadTag(readerID, epc, out, uint32(req.MemoryBank), req.Offset, req.Length, pw, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.ReadTagByCriteria(readerID, c, out, uint32(req.MemoryBank), req.Offset, req.Length, pw, status)
		})
}

// WriteTag writes hex data to tag memory.
func (m *Manager) WriteTag(readerID int32, req WriteRequest) (TagData, error) {
	check := func() error { return validateHexText(req.Data, "data") }
	args := map[string]any{"memoryBank": req.MemoryBank.String(), "offset": req.Offset, "data": req.Data, "blockWrite": req.BlockWrite}
	return m.access("WriteTag", readerID, req.Tag, req.Password, args, check,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.WriteTag(readerID, epc, out, uint32(req.MemoryBank), req.Offset, req.Data, pw, req.BlockWrite, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.WriteTagByCriteria(readerID, c, out, uint32(req.MemoryBank), req.Offset, req.Data, pw, req.BlockWrite, status)
		})
}

// KillTag kills a tag.
func (m *Manager) KillTag(readerID int32, req KillRequest) (TagData, error) {
	return m.access("KillTag", readerID, req.Tag, req.Password, nil, nil,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.KillTag(readerID, epc, out, pw, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.KillTagByCriteria(readerID, c, out, pw, status)
		})
}

// LockTag changes the lock state of a memory bank.
func (m *Manager) LockTag(readerID int32, req LockRequest) (TagData, error) {
	args := map[string]any{"memoryBank": req.MemoryBank.String(), "permission": req.Permission.String()}
	return m.access("LockTag", readerID, req.Tag, req.Password, args, nil,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.LockTag(readerID, epc, out, uint32(req.MemoryBank), uint32(req.Permission), pw, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.LockTagByCriteria(readerID, c, out, uint32(req.MemoryBank), uint32(req.Permission), pw, status)
		})
}

// BlockErase erases words of a memory bank.
func (m *Manager) BlockErase(readerID int32, req BlockEraseRequest) (TagData, error) {
	args := map[string]any{"memoryBank": req.MemoryBank.String(), "offset": req.Offset, "length": req.Length}
	return m.access("BlockErase", readerID, req.Tag, req.Password, args, nil,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.BlockErase(readerID, epc, out, uint32(req.MemoryBank), req.Offset, req.Length, pw, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.BlockEraseByCriteria(readerID, c, out, uint32(req.MemoryBank), req.Offset, req.Length, pw, status)
		})
}

// BlockPermaLock permanently locks memory blocks, or reads their lock state
// when Lock is false.
func (m *Manager) BlockPermaLock(readerID int32, req BlockPermaLockRequest) (TagData, error) {
	check := func() error { return validateHexText(req.BlockMask, "blockMask") }
	args := map[string]any{
		"memoryBank":   req.MemoryBank.String(),
		"lock":         req.Lock,
		"blockPointer": req.BlockPointer,
		"blockRange":   req.BlockRange,
		"blockMask":    req.BlockMask,
	}
	return m.access("BlockPermaLock", readerID, req.Tag, req.Password, args, check,
		func(api sdk.API, epc string, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.BlockPermaLock(readerID, epc, out, uint32(req.MemoryBank), req.Lock, req.BlockPointer, req.BlockRange, req.BlockMask, pw, status)
		},
		func(api sdk.API, c sdk.AccessCriteria, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return api.BlockPermaLockByCriteria(readerID, c, out, uint32(req.MemoryBank), req.Lock, req.BlockPointer, req.BlockRange, req.BlockMask, pw, status)
		})
}

// access validates the selector, password and any extra hex fields, then
// makes the single vendor call for the selector's shape. Validation
// failures never reach the SDK.
func (m *Manager) access(name string, readerID int32, sel TagSelector, password string, args map[string]any,
	check func() error, byEPC byEPCFunc, byCriteria byCriteriaFunc,
) (TagData, error) {
	if m.isClosed() {
		return TagData{}, ErrClosed
	}

	var call func(sdk.API, *sdk.TagData, int64, *string) sdk.Result
	switch s := sel.(type) {
	case EPCSelector:
		call = func(api sdk.API, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return byEPC(api, s.EPC, out, pw, status)
		}
		args = withArg(args, "tag", s.EPC)
	case CriteriaSelector:
		criteria := s.Criteria.toSDK()
		call = func(api sdk.API, out *sdk.TagData, pw int64, status *string) sdk.Result {
			return byCriteria(api, criteria, out, pw, status)
		}
		args = withArg(args, "criteria", s.Criteria)
	default:
		err := &ParameterError{Name: "tag"}
		m.traceRejected(name, readerID, err)
		return TagData{}, err
	}

	pw, err := decodePassword(password)
	if err == nil && check != nil {
		err = check()
	}
	if err != nil {
		m.traceRejected(name, readerID, err)
		return TagData{}, err
	}

	var out sdk.TagData
	err = m.callStatus(name, &readerID, args, func(api sdk.API, status *string) sdk.Result {
		return call(api, &out, pw, status)
	})
	if err != nil {
		return TagData{}, err
	}

	tag := tagDataFromSDK(out)
	if err := operationError(tag); err != nil {
		m.debugLog("tag operation unsuccessful", "command", name, "reader", readerID, "error", err)
		return TagData{}, err
	}
	return tag, nil
}

// operationError reports a tag that names an access operation which did
// not succeed.
func operationError(tag TagData) error {
	if !tag.OperationFailed() {
		return nil
	}
	return &OperationError{Operation: *tag.Operation, Status: tag.OperationStatus}
}

func withArg(args map[string]any, key string, value any) map[string]any {
	if args == nil {
		args = make(map[string]any, 1)
	}
	args[key] = value
	return args
}
