package main

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeEngine() *Engine {
	return NewEngine(&Config{
		FFmpegBin:  "ffmpeg",
		FFprobeBin: "ffprobe",
		FPS:        10,
	})
}

func TestProbeWidth(t *testing.T) {
	engine := newFakeEngine()

	var gotArgs []string
	engine.runOutput = func(cmd *exec.Cmd) ([]byte, error) {
		gotArgs = cmd.Args
		return []byte("1920\n"), nil
	}

	width, err := engine.ProbeWidth(context.Background(), "clip.mp4")
	require.NoError(t, err)
	assert.Equal(t, 1920, width)

	assert.Equal(t, "ffprobe", gotArgs[0])
	assert.Contains(t, gotArgs, "stream=width")
	assert.Contains(t, gotArgs, "v:0")
	assert.Equal(t, "clip.mp4", gotArgs[len(gotArgs)-1])
}

func TestProbeWidthRejectsUnparseableOutput(t *testing.T) {
	engine := newFakeEngine()
	engine.runOutput = func(cmd *exec.Cmd) ([]byte, error) {
		return []byte("N/A\n"), nil
	}

	_, err := engine.ProbeWidth(context.Background(), "clip.mp4")
	assert.ErrorContains(t, err, "parse stream width")
}

func TestGeneratePaletteArguments(t *testing.T) {
	engine := newFakeEngine()

	var gotArgs []string
	engine.run = func(cmd *exec.Cmd) error {
		gotArgs = cmd.Args
		return nil
	}

	err := engine.GeneratePalette(context.Background(), "clip.mp4", ".clip.palette.png", 960)
	require.NoError(t, err)

	assert.Equal(t, "ffmpeg", gotArgs[0])
	assert.Contains(t, gotArgs, "-y")
	assert.Contains(t, gotArgs, "fps=10,scale=960:-1:flags=lanczos,palettegen")
	assert.Equal(t, ".clip.palette.png", gotArgs[len(gotArgs)-1])
}

func TestEncodeArguments(t *testing.T) {
	engine := newFakeEngine()

	var gotArgs []string
	engine.run = func(cmd *exec.Cmd) error {
		gotArgs = cmd.Args
		return nil
	}

	err := engine.Encode(context.Background(), "clip.mp4", ".clip.palette.png", "clip.gif", 640)
	require.NoError(t, err)

	assert.Contains(t, gotArgs, "-filter_complex")
	assert.Contains(t, gotArgs, "fps=10,scale=640:-1:flags=lanczos[x];[x][1:v]paletteuse=dither=sierra2_4a")
	assert.Contains(t, gotArgs, ".clip.palette.png")
	assert.Equal(t, "clip.gif", gotArgs[len(gotArgs)-1])
}

func TestEngineFPSFlowsIntoFilters(t *testing.T) {
	engine := NewEngine(&Config{FFmpegBin: "ffmpeg", FFprobeBin: "ffprobe", FPS: 24})

	assert.Equal(t, "fps=24,scale=1024:-1:flags=lanczos,palettegen", engine.paletteFilter(1024))
	assert.Equal(t, "fps=24,scale=1024:-1:flags=lanczos[x];[x][1:v]paletteuse=dither=sierra2_4a", engine.encodeFilter(1024))
}
