package main

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		stamp string
		want  string
	}{
		{"plain base", "demo", "", "demo.gif"},
		{"base already has extension", "demo.gif", "", "demo.gif"},
		{"uppercase extension stripped", "demo.GIF", "", "demo.gif"},
		{"dotted base keeps inner dots", "clip.v2", "", "clip.v2.gif"},
		{"stamped", "demo", "_20250114093210", "demo_20250114093210.gif"},
		{"stamped with extension on base", "demo.gif", "_20250114093210", "demo_20250114093210.gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, outputName(tt.base, tt.stamp))
		})
	}
}

func TestTimestampSuffixPattern(t *testing.T) {
	stamp := timestampSuffix(time.Date(2025, 1, 14, 9, 32, 10, 0, time.UTC))
	assert.Equal(t, "_20250114093210", stamp)

	name := outputName("demo", stamp)
	assert.Regexp(t, regexp.MustCompile(`^demo_\d{14}\.gif$`), name)
}

func TestPaletteName(t *testing.T) {
	assert.Equal(t,
		filepath.Join("out", ".demo.palette.png"),
		paletteName("out", "demo", ""))

	assert.Equal(t,
		filepath.Join("out", ".demo_20250114093210.palette.png"),
		paletteName("out", "demo", "_20250114093210"))

	// A .gif extension on the base never leaks into the scratch name.
	assert.Equal(t,
		filepath.Join("out", ".demo.palette.png"),
		paletteName("out", "demo.gif", ""))
}

func TestScaleWidth(t *testing.T) {
	tests := []struct {
		probed int
		want   int
	}{
		{1920, 1024},
		{1200, 1024},
		{1199, 960},
		{1000, 960},
		{900, 960},
		{899, 640},
		{640, 640},
		{1, 640},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scaleWidth(tt.probed), "probed width %d", tt.probed)
	}
}
