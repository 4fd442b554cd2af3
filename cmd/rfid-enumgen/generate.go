package main

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateEnums renders Go source for every enum in the file. The output is
// not formatted; writeFormatted runs goimports over it.
func GenerateEnums(file *RawEnumFile, pkg, source string) (code string, err error) {
	if pkg == "" {
		return "", fmt.Errorf("package name is required")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	data := fileData{Package: pkg, Source: source, Enums: file.Enums}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	renderTemplate(&b, "enums", data)
	return b.String(), nil
}

// constName returns the Go constant for an enum value: the enum name
// followed by the value suffix.
func constName(e RawEnumDef, v RawEnumValue) string {
	if v.GoName != "" {
		return e.Name + v.GoName
	}
	return e.Name + enumValueSuffix(v.Name)
}

// constNames returns the constant names of every value of e, in order.
func constNames(e RawEnumDef) []string {
	names := make([]string, len(e.Values))
	for i, v := range e.Values {
		names[i] = constName(e, v)
	}
	return names
}

// enumValueSuffix converts "RESPONSE_TIMEOUT" to "ResponseTimeout".
func enumValueSuffix(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		b.WriteString(strings.ToUpper(lower[:1]))
		b.WriteString(lower[1:])
	}
	return b.String()
}

// firstLower lowercases the first rune unless the word is an acronym.
func firstLower(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	if len(runes) > 1 && unicode.IsUpper(runes[1]) {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func valueExpr(e RawEnumDef, v int) string {
	if e.Hex {
		return fmt.Sprintf("0x%02X", v)
	}
	return fmt.Sprintf("%d", v)
}
