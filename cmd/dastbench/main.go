// Command dastbench drives the depth-aware splay tree and its comparison
// points with synthetic workloads and prints the measurements as a table.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
