// Command planetpath searches the best route between the poles of a planet
// described by a record file.
//
// Usage:
//
//	planetpath search planet.txt --days 3
//	planetpath search planet.txt --config profile.yaml --stats
//	planetpath inspect planet.txt --from 0,0 --to 2,2
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
