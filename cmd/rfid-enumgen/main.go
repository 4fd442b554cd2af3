// Command rfid-enumgen generates typed Go enumerations from a YAML
// definition file.
//
// Usage:
//
//	rfid-enumgen -input enums.yaml -output enums_gen.go -package rfid
//
// It is normally run through go:generate from the package that owns the
// definitions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to the enum definition YAML")
	output := flag.String("output", "", "Path of the generated Go file")
	pkg := flag.String("package", "", "Package name of the generated file")
	flag.Parse()

	if *input == "" || *output == "" || *pkg == "" {
		fmt.Fprintln(os.Stderr, "Usage: rfid-enumgen -input <yaml> -output <file.go> -package <name>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, pkg string) error {
	file, err := LoadEnumFile(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}

	code, err := GenerateEnums(file, pkg, filepath.Base(input))
	if err != nil {
		return fmt.Errorf("generating enums: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s (%d enums)\n", output, len(file.Enums))
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Leave the raw output next to the target for debugging.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
