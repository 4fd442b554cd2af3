package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawEnumFile is the top level of an enum definition file.
type RawEnumFile struct {
	Enums []RawEnumDef `yaml:"enums"`
}

// RawEnumDef represents an enum type definition.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"` // "uint32", "int32"
	Description string         `yaml:"description"`
	Hex         bool           `yaml:"hex"` // render values as 0x..
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue represents a single enum value.
type RawEnumValue struct {
	Name        string `yaml:"name"`
	GoName      string `yaml:"goName"` // overrides the constant suffix derived from Name
	Value       int    `yaml:"value"`
	Description string `yaml:"description"`
}

var validTypes = map[string]bool{
	"uint8": true, "uint16": true, "uint32": true,
	"int8": true, "int16": true, "int32": true,
}

// ParseEnumFile parses enum definitions from YAML bytes and validates them.
func ParseEnumFile(data []byte) (*RawEnumFile, error) {
	var file RawEnumFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing enum file: %w", err)
	}
	if err := file.validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// LoadEnumFile reads and parses an enum definition file.
func LoadEnumFile(path string) (*RawEnumFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseEnumFile(data)
}

func (f *RawEnumFile) validate() error {
	seen := make(map[string]bool)
	for _, e := range f.Enums {
		if e.Name == "" {
			return fmt.Errorf("enum definition missing name")
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate enum %s", e.Name)
		}
		seen[e.Name] = true

		if !validTypes[e.Type] {
			return fmt.Errorf("enum %s: unsupported type %q", e.Name, e.Type)
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %s has no values", e.Name)
		}

		values := make(map[int]string)
		names := make(map[string]bool)
		for _, v := range e.Values {
			if v.Name == "" {
				return fmt.Errorf("enum %s: value missing name", e.Name)
			}
			if names[v.Name] {
				return fmt.Errorf("enum %s: duplicate value name %s", e.Name, v.Name)
			}
			names[v.Name] = true
			if prev, ok := values[v.Value]; ok {
				return fmt.Errorf("enum %s: %s and %s share value %d", e.Name, prev, v.Name, v.Value)
			}
			values[v.Value] = v.Name
		}
	}
	return nil
}
