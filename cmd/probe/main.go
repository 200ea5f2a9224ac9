// Probe - list camera devices that framegrab can open
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/teslashibe/go-framegrab/pkg/camera"
)

func main() {
	max := flag.Int("max", 4, "Highest device index to try (exclusive)")
	flag.Parse()

	fmt.Printf("🔍 Probing camera devices 0-%d...\n", *max-1)

	found := camera.Probe(*max)
	if len(found) == 0 {
		fmt.Println("No cameras found")
		os.Exit(1)
	}

	for _, idx := range found {
		fmt.Printf("  ✅ device %d\n", idx)
	}
	fmt.Printf("\nRun: framegrab -device %d\n", found[0])
}
