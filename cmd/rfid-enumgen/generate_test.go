package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func statusEnum() RawEnumDef {
	return RawEnumDef{
		Name:        "Status",
		Type:        "uint32",
		Description: "Result code reported by the reader SDK",
		Values: []RawEnumValue{
			{Name: "SUCCESS", Value: 0, Description: "Indicates the call succeeded"},
			{Name: "RESPONSE_TIMEOUT", Value: 5},
			{Name: "WRONG_ASCII_PASSWORD", GoName: "WrongASCIIPassword", Value: 8},
		},
	}
}

func TestGenerateEnumConstants(t *testing.T) {
	output, err := GenerateEnums(&RawEnumFile{Enums: []RawEnumDef{statusEnum()}}, "rfid", "enums.yaml")
	if err != nil {
		t.Fatalf("GenerateEnums failed: %v", err)
	}

	mustContain(t, output, "// Code generated by rfid-enumgen from enums.yaml. DO NOT EDIT.")
	mustContain(t, output, "package rfid")
	mustContain(t, output, "type Status uint32")
	mustContain(t, output, "StatusSuccess Status = 0")
	mustContain(t, output, "StatusResponseTimeout Status = 5")
	mustContain(t, output, "StatusWrongASCIIPassword Status = 8")
	mustContain(t, output, "// StatusSuccess indicates the call succeeded.")
}

func TestGenerateEnumString(t *testing.T) {
	output, err := GenerateEnums(&RawEnumFile{Enums: []RawEnumDef{statusEnum()}}, "rfid", "enums.yaml")
	if err != nil {
		t.Fatalf("GenerateEnums failed: %v", err)
	}

	mustContain(t, output, "func (v Status) String() string")
	mustContain(t, output, `return "RESPONSE_TIMEOUT"`)
	mustContain(t, output, `return "UNKNOWN"`)
	mustContain(t, output, "func (v Status) Valid() bool")
	mustContain(t, output, "case StatusSuccess, StatusResponseTimeout, StatusWrongASCIIPassword:")
}

func TestGenerateHexValues(t *testing.T) {
	bank := RawEnumDef{
		Name: "MemoryBank",
		Type: "uint32",
		Hex:  true,
		Values: []RawEnumValue{
			{Name: "EPC", Value: 0x01},
			{Name: "ALL", Value: 0x67},
		},
	}
	output, err := GenerateEnums(&RawEnumFile{Enums: []RawEnumDef{bank}}, "rfid", "enums.yaml")
	if err != nil {
		t.Fatalf("GenerateEnums failed: %v", err)
	}

	mustContain(t, output, "MemoryBankEpc MemoryBank = 0x01")
	mustContain(t, output, "MemoryBankAll MemoryBank = 0x67")
}

func TestGenerateRequiresPackage(t *testing.T) {
	if _, err := GenerateEnums(&RawEnumFile{Enums: []RawEnumDef{statusEnum()}}, "", "x.yaml"); err == nil {
		t.Error("expected error for empty package")
	}
}

func TestEnumValueSuffix(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SUCCESS", "Success"},
		{"RESPONSE_TIMEOUT", "ResponseTimeout"},
		{"AB_FLIP", "AbFlip"},
		{"S0", "S0"},
		{"TRAILING_", "Trailing"},
	}
	for _, tt := range tests {
		if got := enumValueSuffix(tt.in); got != tt.want {
			t.Errorf("enumValueSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstLower(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Result code", "result code"},
		{"EPC memory", "EPC memory"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := firstLower(tt.in); got != tt.want {
			t.Errorf("firstLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunWritesFormattedFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "enums.yaml")
	output := filepath.Join(dir, "enums_gen.go")

	yaml := `enums:
  - name: BeeperConfig
    type: uint32
    description: Reader beeper volume
    values:
      - name: HIGH
        value: 0
      - name: QUIET
        value: 3
`
	if err := os.WriteFile(input, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := run(input, output, "rfid"); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	out := string(data)
	mustContain(t, out, "BeeperConfigHigh  BeeperConfig = 0")
	mustContain(t, out, "\tcase BeeperConfigQuiet:\n\t\treturn \"QUIET\"")
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput:\n%s", substr, output)
	}
}
