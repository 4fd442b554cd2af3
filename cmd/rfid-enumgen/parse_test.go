package main

import (
	"strings"
	"testing"
)

func TestParseEnumFile(t *testing.T) {
	data := []byte(`enums:
  - name: Session
    type: uint32
    description: Gen2 inventory session
    values:
      - name: S0
        value: 0
      - name: S1
        value: 1
        description: Session one
`)
	file, err := ParseEnumFile(data)
	if err != nil {
		t.Fatalf("ParseEnumFile failed: %v", err)
	}
	if len(file.Enums) != 1 {
		t.Fatalf("expected 1 enum, got %d", len(file.Enums))
	}
	e := file.Enums[0]
	if e.Name != "Session" || e.Type != "uint32" {
		t.Errorf("unexpected enum %+v", e)
	}
	if len(e.Values) != 2 || e.Values[1].Description != "Session one" {
		t.Errorf("unexpected values %+v", e.Values)
	}
}

func TestParseEnumFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "enums:\n  - type: uint32\n    values:\n      - {name: A, value: 0}\n",
			wantErr: "missing name",
		},
		{
			name:    "bad type",
			yaml:    "enums:\n  - name: X\n    type: float64\n    values:\n      - {name: A, value: 0}\n",
			wantErr: "unsupported type",
		},
		{
			name:    "no values",
			yaml:    "enums:\n  - name: X\n    type: uint32\n",
			wantErr: "no values",
		},
		{
			name:    "duplicate value",
			yaml:    "enums:\n  - name: X\n    type: uint32\n    values:\n      - {name: A, value: 1}\n      - {name: B, value: 1}\n",
			wantErr: "share value",
		},
		{
			name:    "duplicate enum",
			yaml:    "enums:\n  - name: X\n    type: uint32\n    values:\n      - {name: A, value: 1}\n  - name: X\n    type: uint32\n    values:\n      - {name: A, value: 1}\n",
			wantErr: "duplicate enum",
		},
		{
			name:    "invalid yaml",
			yaml:    "enums: [",
			wantErr: "parsing enum file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnumFile([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}
