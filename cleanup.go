package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mujasoft/gif4docs/logger"
)

// installInterruptCleanup removes palette scratch files on SIGINT/SIGTERM
// and exits with a failure status. Scratch files live in the working
// directory and, in batch mode, the output directory.
func installInterruptCleanup(console *logger.Console, dirs ...string) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigs
		removed := sweepPaletteScratch(dirs...)
		if removed > 0 {
			console.Warn("Interrupted (%v), removed %d palette scratch file(s)", sig, removed)
		} else {
			console.Warn("Interrupted (%v)", sig)
		}
		os.Exit(1)
	}()
}

// sweepPaletteScratch deletes hidden palette scratch files directly inside
// the given directories and reports how many were removed.
func sweepPaletteScratch(dirs ...string) int {
	removed := 0
	seen := map[string]bool{}

	for _, dir := range dirs {
		if dir == "" || seen[dir] {
			continue
		}
		seen[dir] = true

		matches, err := filepath.Glob(filepath.Join(dir, ".*"+paletteSuffix))
		if err != nil {
			continue
		}
		for _, match := range matches {
			if os.Remove(match) == nil {
				removed++
			}
		}
	}

	return removed
}
