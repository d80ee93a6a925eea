// Package main provides the CLI entrypoint for xsdnorm.
//
// xsdnorm normalizes loosely structured records before they are emitted as XML
// against a fixed schema:
//   - Converts field names between snake_case and the schema's PascalCase
//   - Reorders fields into the child sequence the schema declares
//   - Inspects the order-map artifact derived from the schema
package main

import (
	"fmt"
	"os"
	"runtime"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "xsdnorm"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
