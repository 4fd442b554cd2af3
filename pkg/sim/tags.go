package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/sdk"
)

// wordChars is the number of hex characters in a 16-bit memory word.
const wordChars = 4

// tagState is one tag's memory. Banks hold upper-case hex text. The EPC
// bank starts with the CRC and PC words.
type tagState struct {
	banks     map[uint32]string
	locks     map[uint32]uint32
	permalock map[uint32]map[int]bool // locked word indexes per bank
	rssi      int16
	killed    bool
}

func newTagState(t Tag) *tagState {
	epc := strings.ToUpper(t.EPC)
	pc := strings.ToUpper(t.PC)
	if pc == "" {
		pc = fmt.Sprintf("%04X", (len(epc)/wordChars)<<11)
	}
	tid := strings.ToUpper(t.TID)
	if tid == "" {
		tid = "E2801100200000000000"
	}
	rssi := t.RSSI
	if rssi == 0 {
		rssi = -55
	}

	return &tagState{
		banks: map[uint32]string{
			sdk.MemoryBankEPC:      "0000" + pc + epc,
			sdk.MemoryBankTID:      tid,
			sdk.MemoryBankUser:     strings.ToUpper(t.User),
			sdk.MemoryBankReserved: fmt.Sprintf("%08X%08X", uint32(t.KillPassword), uint32(t.AccessPassword)),
		},
		locks:     make(map[uint32]uint32),
		permalock: make(map[uint32]map[int]bool),
		rssi:      rssi,
	}
}

func (t *tagState) epc() string {
	return t.banks[sdk.MemoryBankEPC][2*wordChars:]
}

func (t *tagState) pc() string {
	return t.banks[sdk.MemoryBankEPC][wordChars : 2*wordChars]
}

func (t *tagState) killPassword() int64 {
	return t.password(0)
}

func (t *tagState) accessPassword() int64 {
	return t.password(2 * wordChars)
}

func (t *tagState) password(at int) int64 {
	v, _ := strconv.ParseUint(t.banks[sdk.MemoryBankReserved][at:at+2*wordChars], 16, 32)
	return int64(v)
}

// read returns length words starting at offset. Zero length reads to the
// end of the bank.
func (t *tagState) read(bank uint32, offset, length int16) (string, bool) {
	mem, ok := t.banks[bank]
	if !ok || offset < 0 || length < 0 {
		return "", false
	}
	start := int(offset) * wordChars
	end := len(mem)
	if length > 0 {
		end = start + int(length)*wordChars
	}
	if start > len(mem) || end > len(mem) {
		return "", false
	}
	return mem[start:end], true
}

// write replaces words starting at offset. Writes never grow a bank.
func (t *tagState) write(bank uint32, offset int16, data string) bool {
	mem, ok := t.banks[bank]
	if !ok || offset < 0 {
		return false
	}
	start := int(offset) * wordChars
	end := start + len(data)
	if end > len(mem) {
		return false
	}
	t.banks[bank] = mem[:start] + strings.ToUpper(data) + mem[end:]
	return true
}

// matches reports whether the tag satisfies every filter in c.
func (t *tagState) matches(c sdk.AccessCriteria) bool {
	for _, f := range []*sdk.TagFilter{c.TagFilter1, c.TagFilter2} {
		if f != nil && !t.matchFilter(*f) {
			return false
		}
	}
	return true
}

func (t *tagState) matchFilter(f sdk.TagFilter) bool {
	mem := t.banks[f.MaskBank]
	start := int(f.MaskStartPos) / 4
	n := int(f.MatchLength) / 4
	if n == 0 || n > len(f.Data) {
		n = len(f.Data)
	}

	match := start+n <= len(mem)
	for i := 0; match && i < n; i++ {
		d := nibble(f.Data[i])
		m := byte(0xF)
		if i < len(f.Mask) {
			m = nibble(f.Mask[i])
		}
		if nibble(mem[start+i])&m != d&m {
			match = false
		}
	}
	return match == f.DoMatch
}

// matchesPreFilters applies select records. A tag must match every
// filter; the select action is not modelled beyond that.
func (t *tagState) matchesPreFilters(filters []sdk.PreFilter) bool {
	for _, f := range filters {
		mem := t.banks[f.MemoryBank]
		start := int(f.MaskStartPos) / 4
		pattern := strings.ToUpper(f.MatchPattern)
		if start+len(pattern) > len(mem) || mem[start:start+len(pattern)] != pattern {
			return false
		}
	}
	return true
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
