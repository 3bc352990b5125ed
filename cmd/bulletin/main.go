// Command bulletin runs the normalization core over bulletin files on disk.
//
// Usage:
//
//	bulletin parse testdata/lsr.txt
//	bulletin parse --envelope message.xml --table warning.txt
//	bulletin categorize --filters filters.yaml *.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
