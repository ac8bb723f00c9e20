// Command lvhom computes persistence intervals of simplicial filtrations.
//
// Usage:
//
//	lvhom compute <filtration_file> [output_file] [log_prefix]
//	lvhom generate ball|sphere|cycle|path|wheel|complete|random <n>
//	lvhom version
package main

import (
	"fmt"
	"os"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lvhom:", err)
		os.Exit(1)
	}
}
