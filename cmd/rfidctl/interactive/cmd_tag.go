package interactive

import (
	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// tagArgs parses the "<reader> <epc> <bank>" prefix shared by the access
// commands.
func (s *Shell) tagArgs(args []string, n int, usage string) (int32, rfid.TagSelector, rfid.MemoryBank, bool) {
	if len(args) < n {
		s.printf("Usage: %s\n", usage)
		return 0, nil, 0, false
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return 0, nil, 0, false
	}
	bank, err := parseEnum("memory bank", args[2], memoryBanks)
	if err != nil {
		s.fail(err)
		return 0, nil, 0, false
	}
	return id, rfid.TagByEPC(args[1]), bank, true
}

func (s *Shell) printAccess(tag rfid.TagData, err error) {
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("%s\n", formatTag(tag))
}

func (s *Shell) cmdRead(args []string) {
	const usage = "read <reader> <epc> <bank> <offset> <words> [password]"
	id, sel, bank, ok := s.tagArgs(args, 5, usage)
	if !ok {
		return
	}
	offset, err := parseWords("offset", args[3])
	if err != nil {
		s.fail(err)
		return
	}
	length, err := parseWords("length", args[4])
	if err != nil {
		s.fail(err)
		return
	}
	s.printAccess(s.mgr.ReadTag(id, rfid.ReadRequest{
		Tag:        sel,
		MemoryBank: bank,
		Offset:     offset,
		Length:     length,
		Password:   optional(args, 5),
	}))
}

func (s *Shell) cmdWrite(args []string) {
	const usage = "write <reader> <epc> <bank> <offset> <hex> [password]"
	id, sel, bank, ok := s.tagArgs(args, 5, usage)
	if !ok {
		return
	}
	offset, err := parseWords("offset", args[3])
	if err != nil {
		s.fail(err)
		return
	}
	s.printAccess(s.mgr.WriteTag(id, rfid.WriteRequest{
		Tag:        sel,
		MemoryBank: bank,
		Offset:     offset,
		Data:       args[4],
		Password:   optional(args, 5),
	}))
}

func (s *Shell) cmdKill(args []string) {
	if len(args) < 3 {
		s.printf("Usage: kill <reader> <epc> <password>\n")
		return
	}
	id, err := parseReader(args[0])
	if err != nil {
		s.fail(err)
		return
	}
	s.printAccess(s.mgr.KillTag(id, rfid.KillRequest{
		Tag:      rfid.TagByEPC(args[1]),
		Password: args[2],
	}))
}

func (s *Shell) cmdLock(args []string) {
	const usage = "lock <reader> <epc> <bank> <permission> [password]"
	id, sel, bank, ok := s.tagArgs(args, 4, usage)
	if !ok {
		return
	}
	perm, err := parseEnum("permission", args[3], permissions)
	if err != nil {
		s.fail(err)
		return
	}
	s.printAccess(s.mgr.LockTag(id, rfid.LockRequest{
		Tag:        sel,
		MemoryBank: bank,
		Permission: perm,
		Password:   optional(args, 4),
	}))
}

func (s *Shell) cmdErase(args []string) {
	const usage = "erase <reader> <epc> <bank> <offset> <words> [password]"
	id, sel, bank, ok := s.tagArgs(args, 5, usage)
	if !ok {
		return
	}
	offset, err := parseWords("offset", args[3])
	if err != nil {
		s.fail(err)
		return
	}
	length, err := parseWords("length", args[4])
	if err != nil {
		s.fail(err)
		return
	}
	s.printAccess(s.mgr.BlockErase(id, rfid.BlockEraseRequest{
		Tag:        sel,
		MemoryBank: bank,
		Offset:     offset,
		Length:     length,
		Password:   optional(args, 5),
	}))
}
