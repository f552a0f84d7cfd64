// Command mazegen generates, renders and archives mazes.
//
//	mazegen generate --topology hex --rows 12 --cols 16 --algorithm wilson --png hex.png --save
//	mazegen history --algorithm wilson
//	mazegen render --run <id> --ascii
//	mazegen algorithms
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}
