package main

import (
	"path/filepath"
	"strings"
	"time"
)

const outputExt = ".gif"

// timestampSuffix renders the timestamp-mode tag, e.g. "_20250114_093210"
// collapsed to the 14-digit form "_20250114093210" used in output names.
func timestampSuffix(now time.Time) string {
	return "_" + now.Format("20060102150405")
}

// outputName derives the final GIF filename from a user-supplied base name.
// A pre-existing .gif extension on the base is stripped so "demo.gif" does
// not become "demo.gif.gif". stamp is empty unless timestamp mode is on.
func outputName(base, stamp string) string {
	if ext := filepath.Ext(base); strings.EqualFold(ext, outputExt) {
		base = base[:len(base)-len(ext)]
	}
	return base + stamp + outputExt
}

// paletteName derives the transient palette scratch filename, hidden and
// placed in the same directory as the output so batch runs sharing a
// directory cannot collide.
func paletteName(dir, base, stamp string) string {
	if ext := filepath.Ext(base); strings.EqualFold(ext, outputExt) {
		base = base[:len(base)-len(ext)]
	}
	return filepath.Join(dir, "."+base+stamp+paletteSuffix)
}

const paletteSuffix = ".palette.png"

// scaleWidth picks the encode width from the probed source width. Height is
// always derived by the engine to preserve aspect ratio.
func scaleWidth(probed int) int {
	switch {
	case probed >= 1200:
		return 1024
	case probed >= 900:
		return 960
	default:
		return 640
	}
}
