package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"concat":     func(a, b string) string { return a + b },
	"firstLower": firstLower,
	"constName":  constName,
	"valueExpr":  valueExpr,
	"quote":      func(s string) string { return fmt.Sprintf("%q", s) },
	"join":       strings.Join,
	"constNames": constNames,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl + enumsTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// fileData holds data for a whole generated file.
type fileData struct {
	Package string
	Source  string
	Enums   []RawEnumDef
}

const headerTmpl = `{{define "header"}}// Code generated by rfid-enumgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{end}}`

const enumsTmpl = `{{define "enums"}}
{{- range .Enums -}}
{{- $enum := .}}
// {{.Name}} is {{firstLower .Description}}.
type {{.Name}} {{.Type}}

const (
{{- range .Values}}
{{- if .Description}}
// {{constName $enum .}} {{firstLower .Description}}.
{{- end}}
{{constName $enum .}} {{$enum.Name}} = {{valueExpr $enum .Value}}
{{- end}}
)

// String returns the {{firstLower .Name}} name.
func (v {{.Name}}) String() string {
switch v {
{{- range .Values}}
case {{constName $enum .}}:
return {{quote .Name}}
{{- end}}
default:
return "UNKNOWN"
}
}

// Valid reports whether v is a known {{firstLower .Name}} value.
func (v {{.Name}}) Valid() bool {
switch v {
case {{join (constNames $enum) ", "}}:
return true
default:
return false
}
}

{{end}}
{{- end}}`
