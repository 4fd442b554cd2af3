package version

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  SDKVersion
	}{
		{"2.0", SDKVersion{2, 0, 0}},
		{"2.0.3", SDKVersion{2, 0, 3}},
		{"1.1.12.9", SDKVersion{1, 1, 12}},
		{"sim-2.0.3", SDKVersion{2, 0, 3}},
		{"v10.23", SDKVersion{10, 23, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, v, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"2",
		"abc",
		"2.x",
		"2..1",
		"sim-",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestSDKVersion_String(t *testing.T) {
	v := SDKVersion{Major: 2, Minor: 1, Patch: 7}
	if got := v.String(); got != "2.1.7" {
		t.Errorf("String() = %q, want %q", got, "2.1.7")
	}
}

func TestSDKVersion_Less(t *testing.T) {
	tests := []struct {
		a, b SDKVersion
		want bool
	}{
		{SDKVersion{1, 9, 9}, SDKVersion{2, 0, 0}, true},
		{SDKVersion{2, 0, 1}, SDKVersion{2, 0, 0}, false},
		{SDKVersion{2, 0, 0}, SDKVersion{2, 1, 0}, true},
		{SDKVersion{2, 0, 0}, SDKVersion{2, 0, 0}, false},
	}

	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%v.Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCheckSDK(t *testing.T) {
	if _, err := CheckSDK("sim-2.0.3"); err != nil {
		t.Errorf("CheckSDK(sim-2.0.3) = %v", err)
	}
	if _, err := CheckSDK("2.4"); err != nil {
		t.Errorf("CheckSDK(2.4) = %v", err)
	}
	if _, err := CheckSDK("1.1.12"); err == nil {
		t.Error("1.x should not be supported")
	}
	if _, err := CheckSDK("3.0"); err == nil {
		t.Error("3.x should not be supported")
	}
	if _, err := CheckSDK("garbage"); err == nil {
		t.Error("unparsable version should fail")
	}
}
