// Package version parses SDK version strings and carries the build version
// of the binaries.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Build is the version of the binaries, set with
// -ldflags "-X github.com/Syfaro/ZebraRfid/pkg/version.Build=v1.2.3".
var Build = "dev"

// MinimumSDK is the oldest SDK release the adapter is tested against.
const MinimumSDK = "2.0"

// SDKVersion is a parsed "major.minor[.patch[.build]]" SDK version.
type SDKVersion struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// Parse parses an SDK version string. A leading non-numeric tag such as
// "sim-" is ignored, as is anything after the third component.
func Parse(s string) (SDKVersion, error) {
	raw := s
	if i := strings.IndexFunc(s, isDigit); i > 0 {
		s = s[i:]
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return SDKVersion{}, fmt.Errorf("invalid SDK version %q: expected major.minor", raw)
	}

	var nums [3]uint16
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.ParseUint(parts[i], 10, 16)
		if err != nil || parts[i] == "" {
			return SDKVersion{}, fmt.Errorf("invalid SDK version %q: bad component %q", raw, parts[i])
		}
		nums[i] = uint16(n)
	}
	return SDKVersion{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// String returns the version as "major.minor.patch".
func (v SDKVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v is older than other.
func (v SDKVersion) Less(other SDKVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// Compatible returns true if v has the same major version as MinimumSDK and
// is not older than it.
func (v SDKVersion) Compatible() bool {
	min, _ := Parse(MinimumSDK)
	return v.Major == min.Major && !v.Less(min)
}

// CheckSDK parses s and reports an error when it is not Compatible.
func CheckSDK(s string) (SDKVersion, error) {
	v, err := Parse(s)
	if err != nil {
		return SDKVersion{}, err
	}
	if !v.Compatible() {
		return v, fmt.Errorf("SDK version %s is not supported, need %s.x", v, MinimumSDK)
	}
	return v, nil
}
