package sim

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// blocksPerPointer is the number of blocks addressed by one unit of a
// BlockPermaLock block pointer. A block is one word.
const blocksPerPointer = 16

// Operation failure descriptions reported in TagData.OperationStatus.
const (
	statusMemoryLocked  = "memory locked"
	statusMemoryOverrun = "memory overrun"
	statusZeroKill      = "kill password is zero"
)

var opNames = map[uint32]string{
	sdk.AccessOpRead:           "READ",
	sdk.AccessOpWrite:          "WRITE",
	sdk.AccessOpLock:           "LOCK",
	sdk.AccessOpKill:           "KILL",
	sdk.AccessOpBlockWrite:     "BLOCK_WRITE",
	sdk.AccessOpBlockErase:     "BLOCK_ERASE",
	sdk.AccessOpBlockPermaLock: "BLOCK_PERMALOCK",
}

// target selects the tag of an access operation.
type target struct {
	epc      string
	criteria *sdk.AccessCriteria
}

func byEPC(epc string) target { return target{epc: strings.ToUpper(epc)} }

func byCriteria(c sdk.AccessCriteria) target { return target{criteria: &c} }

// ReadTag reads tag memory.
func (s *SDK) ReadTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	return s.readTag(readerID, byEPC(tagID), tag, bank, offset, length, password, status)
}

// ReadTagByCriteria reads memory of the first tag matching criteria.
func (s *SDK) ReadTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	return s.readTag(readerID, byCriteria(criteria), tag, bank, offset, length, password, status)
}

func (s *SDK) readTag(readerID int32, tgt target, out *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	return s.access(readerID, tgt, sdk.AccessOpRead, password, out, status, func(t *tagState, td *sdk.TagData) string {
		if bank == sdk.MemoryBankReserved && t.locks[bank] == sdk.PermissionAlwaysNotAccessible {
			return statusMemoryLocked
		}
		data, ok := t.read(bank, offset, length)
		if !ok {
			return statusMemoryOverrun
		}
		td.MemoryBank = bank
		td.MemoryBankData = data
		return ""
	})
}

// WriteTag writes hex data to tag memory.
func (s *SDK) WriteTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) sdk.Result {
	return s.writeTag(readerID, byEPC(tagID), tag, bank, offset, data, password, blockWrite, status)
}

// WriteTagByCriteria writes to the first tag matching criteria.
func (s *SDK) WriteTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) sdk.Result {
	return s.writeTag(readerID, byCriteria(criteria), tag, bank, offset, data, password, blockWrite, status)
}

func (s *SDK) writeTag(readerID int32, tgt target, out *sdk.TagData, bank uint32, offset int16, data string, password int64, blockWrite bool, status *string) sdk.Result {
	if data == "" || !isHex(data) || len(data)%wordChars != 0 {
		return invalid(status, "data must be whole words of hex")
	}
	op := sdk.AccessOpWrite
	if blockWrite {
		op = sdk.AccessOpBlockWrite
	}
	return s.access(readerID, tgt, op, password, out, status, func(t *tagState, td *sdk.TagData) string {
		if msg := t.writable(bank, offset, len(data)/wordChars); msg != "" {
			return msg
		}
		t.write(bank, offset, data)
		td.MemoryBank = bank
		td.ModifiedWordCount = int32(len(data) / wordChars)
		if bank == sdk.MemoryBankEPC {
			td.TagID = t.epc()
		}
		return ""
	})
}

// KillTag kills a tag. The password is the kill password.
func (s *SDK) KillTag(readerID int32, tagID string, tag *sdk.TagData, password int64, status *string) sdk.Result {
	return s.killTag(readerID, byEPC(tagID), tag, password, status)
}

// KillTagByCriteria kills the first tag matching criteria.
func (s *SDK) KillTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, password int64, status *string) sdk.Result {
	return s.killTag(readerID, byCriteria(criteria), tag, password, status)
}

func (s *SDK) killTag(readerID int32, tgt target, out *sdk.TagData, password int64, status *string) sdk.Result {
	return s.access(readerID, tgt, sdk.AccessOpKill, password, out, status, func(t *tagState, td *sdk.TagData) string {
		if t.killPassword() == 0 {
			return statusZeroKill
		}
		t.killed = true
		return ""
	})
}

// LockTag changes the lock permission of a memory bank.
func (s *SDK) LockTag(readerID int32, tagID string, tag *sdk.TagData, bank uint32, permission uint32, password int64, status *string) sdk.Result {
	return s.lockTag(readerID, byEPC(tagID), tag, bank, permission, password, status)
}

// LockTagByCriteria locks the first tag matching criteria.
func (s *SDK) LockTagByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, permission uint32, password int64, status *string) sdk.Result {
	return s.lockTag(readerID, byCriteria(criteria), tag, bank, permission, password, status)
}

func (s *SDK) lockTag(readerID int32, tgt target, out *sdk.TagData, bank uint32, permission uint32, password int64, status *string) sdk.Result {
	if permission > sdk.PermissionAlwaysNotAccessible {
		return invalid(status, "invalid lock permission")
	}
	return s.access(readerID, tgt, sdk.AccessOpLock, password, out, status, func(t *tagState, td *sdk.TagData) string {
		current := t.locks[bank]
		if current == permission {
			return ""
		}
		if current == sdk.PermissionPermanent || current == sdk.PermissionAlwaysNotAccessible {
			return statusMemoryLocked
		}
		t.locks[bank] = permission
		td.MemoryBank = bank
		return ""
	})
}

// BlockErase zeroes words of a memory bank.
func (s *SDK) BlockErase(readerID int32, tagID string, tag *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	return s.blockErase(readerID, byEPC(tagID), tag, bank, offset, length, password, status)
}

// BlockEraseByCriteria erases words of the first tag matching criteria.
func (s *SDK) BlockEraseByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	return s.blockErase(readerID, byCriteria(criteria), tag, bank, offset, length, password, status)
}

func (s *SDK) blockErase(readerID int32, tgt target, out *sdk.TagData, bank uint32, offset, length int16, password int64, status *string) sdk.Result {
	if length <= 0 {
		return invalid(status, "length must be positive")
	}
	return s.access(readerID, tgt, sdk.AccessOpBlockErase, password, out, status, func(t *tagState, td *sdk.TagData) string {
		if msg := t.writable(bank, offset, int(length)); msg != "" {
			return msg
		}
		t.write(bank, offset, strings.Repeat("0", int(length)*wordChars))
		td.MemoryBank = bank
		td.ModifiedWordCount = int32(length)
		return ""
	})
}

// BlockPermaLock permanently locks the blocks selected by blockMask, or
// reports the current permalock state when doLock is false.
func (s *SDK) BlockPermaLock(readerID int32, tagID string, tag *sdk.TagData, bank uint32, doLock bool, blockPtr, blockRange int16, blockMask string, password int64, status *string) sdk.Result {
	return s.blockPermaLock(readerID, byEPC(tagID), tag, bank, doLock, blockPtr, blockRange, blockMask, password, status)
}

// BlockPermaLockByCriteria permalocks blocks of the first tag matching
// criteria.
func (s *SDK) BlockPermaLockByCriteria(readerID int32, criteria sdk.AccessCriteria, tag *sdk.TagData, bank uint32, doLock bool, blockPtr, blockRange int16, blockMask string, password int64, status *string) sdk.Result {
	return s.blockPermaLock(readerID, byCriteria(criteria), tag, bank, doLock, blockPtr, blockRange, blockMask, password, status)
}

func (s *SDK) blockPermaLock(readerID int32, tgt target, out *sdk.TagData, bank uint32, doLock bool, blockPtr, blockRange int16, blockMask string, password int64, status *string) sdk.Result {
	if blockPtr < 0 || blockRange <= 0 {
		return invalid(status, "invalid block range")
	}
	if doLock && (!isHex(blockMask) || len(blockMask) != int(blockRange)*blocksPerPointer/4) {
		return invalid(status, fmt.Sprintf("block mask must be %d hex digits", int(blockRange)*blocksPerPointer/4))
	}
	return s.access(readerID, tgt, sdk.AccessOpBlockPermaLock, password, out, status, func(t *tagState, td *sdk.TagData) string {
		first := int(blockPtr) * blocksPerPointer
		count := int(blockRange) * blocksPerPointer
		locked := t.permalock[bank]
		if locked == nil {
			locked = make(map[int]bool)
			t.permalock[bank] = locked
		}

		if doLock {
			for i := range count {
				if nibble(blockMask[i/4])&(8>>(i%4)) != 0 {
					locked[first+i] = true
				}
			}
		}

		var mask strings.Builder
		for n := 0; n < count; n += 4 {
			var v byte
			for i := range 4 {
				if locked[first+n+i] {
					v |= 8 >> i
				}
			}
			fmt.Fprintf(&mask, "%X", v)
		}
		td.MemoryBank = bank
		td.PermaLock = mask.String()
		return ""
	})
}

// writable reports why words [offset, offset+n) of bank cannot be written,
// or "" when they can.
func (t *tagState) writable(bank uint32, offset int16, n int) string {
	if t.locks[bank] == sdk.PermissionAlwaysNotAccessible {
		return statusMemoryLocked
	}
	mem, ok := t.banks[bank]
	if !ok || offset < 0 || (int(offset)+n)*wordChars > len(mem) {
		return statusMemoryOverrun
	}
	for i := int(offset); i < int(offset)+n; i++ {
		if t.permalock[bank][i] {
			return statusMemoryLocked
		}
	}
	return ""
}

// access finds the target tag, checks the password and runs fn. fn returns
// a failure description, or "" on success. A tag-level failure is reported
// through TagData with a successful result; a wrong password fails the
// call.
func (s *SDK) access(readerID int32, tgt target, op uint32, password int64, out *sdk.TagData, status *string, fn func(*tagState, *sdk.TagData) string) sdk.Result {
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

	t := s.find(tgt)
	if t == nil {
		setStatus(status, "no tag in field matches")
		return sdk.ResultResponseError
	}

	td := sdk.TagData{
		TagID:    t.epc(),
		PC:       t.pc(),
		PeakRSSI: t.rssi,
		OpCode:   &sdk.AccessOperationCode{Name: opNames[op], Ordinal: op},
	}

	expected := t.accessPassword()
	if op == sdk.AccessOpKill {
		expected = t.killPassword()
	}
	if expected != 0 && password != expected {
		td.OperationStatus = "incorrect password"
		if out != nil {
			*out = td
		}
		setStatus(status, fmt.Sprintf("%s: password mismatch", strings.ToLower(opNames[op])))
		return sdk.ResultResponseError
	}

	msg := fn(t, &td)
	td.OperationSucceed = msg == ""
	td.OperationStatus = msg
	if t.killed {
		s.tags = slices.DeleteFunc(s.tags, func(x *tagState) bool { return x == t })
	}
	if out != nil {
		*out = td
	}
	s.debugLog("access", "reader", readerID, "op", opNames[op], "tag", td.TagID, "ok", td.OperationSucceed)
	return sdk.ResultSuccess
}

// find returns the first tag in the field that matches tgt. Must be called
// with s.mu held.
func (s *SDK) find(tgt target) *tagState {
	for _, t := range s.tags {
		if tgt.criteria != nil {
			if t.matches(*tgt.criteria) {
				return t
			}
			continue
		}
		if t.epc() == tgt.epc {
			return t
		}
	}
	return nil
}
