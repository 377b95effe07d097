package main

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Engine wraps the external ffmpeg/ffprobe processes. Command execution goes
// through the run/runOutput fields so tests can substitute fakes.
type Engine struct {
	FFmpeg  string
	FFprobe string
	FPS     int

	run       func(cmd *exec.Cmd) error
	runOutput func(cmd *exec.Cmd) ([]byte, error)
}

func NewEngine(cfg *Config) *Engine {
	e := &Engine{
		FFmpeg:  cfg.FFmpegBin,
		FFprobe: cfg.FFprobeBin,
		FPS:     cfg.FPS,
	}

	e.run = func(cmd *exec.Cmd) error {
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s error: %w, output: %s", cmd.Args[0], err, strings.TrimSpace(string(output)))
		}
		return nil
	}

	e.runOutput = func(cmd *exec.Cmd) ([]byte, error) {
		return cmd.Output()
	}

	return e
}

// Check verifies both engine binaries are reachable before any work starts.
func (e *Engine) Check() error {
	for _, bin := range []string{e.FFmpeg, e.FFprobe} {
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("missing dependency: %s not found in PATH", bin)
		}
	}
	return nil
}

// ProbeWidth reports the pixel width of the first video stream.
func (e *Engine) ProbeWidth(ctx context.Context, input string) (int, error) {
	cmd := exec.CommandContext(ctx, e.FFprobe,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width",
		"-of", "csv=p=0",
		input,
	)

	output, err := e.runOutput(cmd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", e.FFprobe, err)
	}

	line := strings.TrimSpace(string(output))
	width, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("parse stream width %q: %w", line, err)
	}

	return width, nil
}

// GeneratePalette runs the first pass: build a reusable color palette for
// the source at the configured sampling rate.
func (e *Engine) GeneratePalette(ctx context.Context, input, palette string, width int) error {
	cmd := exec.CommandContext(ctx, e.FFmpeg,
		"-y",
		"-i", input,
		"-vf", e.paletteFilter(width),
		palette,
	)
	return e.run(cmd)
}

// Encode runs the second pass: produce the final GIF applying the palette.
func (e *Engine) Encode(ctx context.Context, input, palette, output string, width int) error {
	cmd := exec.CommandContext(ctx, e.FFmpeg,
		"-y",
		"-i", input,
		"-i", palette,
		"-filter_complex", e.encodeFilter(width),
		"-loop", "0",
		output,
	)
	return e.run(cmd)
}

func (e *Engine) paletteFilter(width int) string {
	return fmt.Sprintf("fps=%d,scale=%d:-1:flags=lanczos,palettegen", e.FPS, width)
}

func (e *Engine) encodeFilter(width int) string {
	return fmt.Sprintf("fps=%d,scale=%d:-1:flags=lanczos[x];[x][1:v]paletteuse=dither=sierra2_4a", e.FPS, width)
}
