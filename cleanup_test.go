package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepPaletteScratch(t *testing.T) {
	work := t.TempDir()
	out := t.TempDir()

	touch(t, filepath.Join(work, ".demo.palette.png"))
	touch(t, filepath.Join(out, ".a_20250114093210.palette.png"))
	keepGif := touch(t, filepath.Join(out, "a.gif"))
	keepHidden := touch(t, filepath.Join(out, ".gitignore"))

	removed := sweepPaletteScratch(work, out)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, filepath.Join(work, ".demo.palette.png"))
	assert.NoFileExists(t, filepath.Join(out, ".a_20250114093210.palette.png"))
	assert.FileExists(t, keepGif)
	assert.FileExists(t, keepHidden)
}

func TestSweepPaletteScratchDeduplicatesDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, ".demo.palette.png"))

	removed := sweepPaletteScratch(dir, dir, "")
	assert.Equal(t, 1, removed)
}
