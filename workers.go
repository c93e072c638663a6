package main

import (
	"time"

	"dubby-site/dubbing"
)

// runTTL matches the session cookie lifetime; a run nobody has touched
// for this long can no longer be reached by any browser.
const runTTL = 24 * time.Hour

func cleanupIdleRuns(registry *dubbing.Registry) {
	log.Debugln("cleanupIdleRuns...")
	removed := registry.Evict(runTTL)
	if removed > 0 {
		log.Infof("evicted %d idle dub runs", removed)
	}
}

// PeriodicCleanup evicts expired in-memory runs on an hourly cadence.
func PeriodicCleanup(registry *dubbing.Registry) {
	cleanupIdleRuns(registry)
	ticker := time.NewTicker(1 * time.Hour)
	for range ticker.C {
		cleanupIdleRuns(registry)
	}
}
