package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

var (
	memoryBanks = []rfid.MemoryBank{
		rfid.MemoryBankEPC, rfid.MemoryBankTID, rfid.MemoryBankUser, rfid.MemoryBankReserved,
	}
	permissions = []rfid.AccessPermission{
		rfid.AccessPermissionAccessible, rfid.AccessPermissionPermanent,
		rfid.AccessPermissionSecured, rfid.AccessPermissionAlwaysNotAccessible,
	}
	sessions = []rfid.Session{rfid.SessionS0, rfid.SessionS1, rfid.SessionS2, rfid.SessionS3}
	beepers  = []rfid.BeeperConfig{
		rfid.BeeperConfigHigh, rfid.BeeperConfigMedium, rfid.BeeperConfigLow, rfid.BeeperConfigQuiet,
	}
	batchModes = []rfid.BatchModeConfig{
		rfid.BatchModeConfigDisable, rfid.BatchModeConfigAuto, rfid.BatchModeConfigEnable,
	}
)

// parseEnum matches s case-insensitively against the names of values.
func parseEnum[T fmt.Stringer](what, s string, values []T) (T, error) {
	names := make([]string, len(values))
	for i, v := range values {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
		names[i] = strings.ToLower(v.String())
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q (use: %s)", what, s, strings.Join(names, ", "))
}

func parseReader(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid reader id %q", s)
	}
	return int32(id), nil
}

func parseWords(what, s string) (int16, error) {
	n, err := strconv.ParseInt(s, 10, 16)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return int16(n), nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected on or off, got %q", s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// optional returns args[i] or the empty string.
func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func formatTag(t rfid.TagData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "EPC=%s", t.EPC)
	if t.PeakRSSI != 0 {
		fmt.Fprintf(&b, " rssi=%d", t.PeakRSSI)
	}
	if t.SeenCount != 0 {
		fmt.Fprintf(&b, " seen=%d", t.SeenCount)
	}
	if t.Operation != nil {
		status := "ok"
		if !t.OperationSucceeded {
			status = "failed"
		}
		fmt.Fprintf(&b, " op=%s(%s)", t.Operation.Code, status)
		if t.OperationStatus != "" {
			fmt.Fprintf(&b, " status=%q", t.OperationStatus)
		}
	}
	if t.MemoryBank != nil && t.MemoryBankData != "" {
		fmt.Fprintf(&b, " %s=%s", t.MemoryBank, t.MemoryBankData)
	}
	if t.Proximity != 0 {
		fmt.Fprintf(&b, " proximity=%d%%", t.Proximity)
	}
	return b.String()
}

func formatEvent(ev rfid.Event) string {
	prefix := fmt.Sprintf("reader %d %s", ev.ReaderID(), ev.Kind())
	switch e := ev.(type) {
	case rfid.ReaderAppeared:
		return fmt.Sprintf("%s: %s (%s)", prefix, e.Info.Name, e.Info.ConnectionType)
	case rfid.SessionEstablished:
		return fmt.Sprintf("%s: %s", prefix, e.Info.Name)
	case rfid.TagRead:
		return fmt.Sprintf("%s: %s", prefix, formatTag(e.Tag))
	case rfid.MultiProximity:
		return fmt.Sprintf("%s: %s", prefix, formatTag(e.Tag))
	case rfid.StatusNotification:
		if e.Summary != nil {
			return fmt.Sprintf("%s: %s tags=%d rounds=%d time=%dus",
				prefix, e.Status, e.Summary.TotalTags, e.Summary.TotalRounds, e.Summary.TotalTimeUs)
		}
		return fmt.Sprintf("%s: %s", prefix, e.Status)
	case rfid.Proximity:
		return fmt.Sprintf("%s: %d%%", prefix, e.Percent)
	case rfid.Trigger:
		return fmt.Sprintf("%s: %s", prefix, e.Event)
	case rfid.Battery:
		charging := ""
		if e.Status.Charging {
			charging = " charging"
		}
		return fmt.Sprintf("%s: %d%%%s %s", prefix, e.Status.Level, charging, e.Status.Cause)
	case rfid.WlanScan:
		return fmt.Sprintf("%s: %s %s %s", prefix, e.Entry.SSID, e.Entry.MACAddress, e.Entry.Level)
	default:
		return prefix
	}
}
