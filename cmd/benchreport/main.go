// Command benchreport prints summary and baseline comparison tables for a
// CSV file of benchmark measurements and can emit a Markdown report.
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	// Recover from any panics in the application
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Application Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	Execute()
}
