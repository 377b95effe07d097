package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mujasoft/gif4docs/logger"
)

var supportedFormats = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".webm": true,
	".m4v":  true,
	".flv":  true,
	".wmv":  true,
}

type Processor struct {
	Engine    *Engine
	Console   *logger.Console
	Timestamp bool

	now func() time.Time
}

type BatchResult struct {
	TotalFiles     int
	ConvertedFiles int
	FailedFiles    []string
}

func NewProcessor(cfg *Config, engine *Engine, console *logger.Console) *Processor {
	return &Processor{
		Engine:    engine,
		Console:   console,
		Timestamp: cfg.Timestamp,
		now:       time.Now,
	}
}

func (p *Processor) Run(ctx context.Context, cfg *Config) error {
	if cfg.BatchMode() {
		return p.ProcessDirectory(ctx, cfg.InputDir, cfg.OutputDir)
	}
	return p.ProcessSingleFile(ctx, cfg.InputFile, cfg.OutputBase)
}

// ConvertFile performs one conversion: validate the container format, probe
// the source width, then run the two engine passes. The palette scratch file
// is removed on success only.
func (p *Processor) ConvertFile(ctx context.Context, input, palette, output string) error {
	ext := strings.ToLower(filepath.Ext(input))
	if !supportedFormats[ext] {
		return fmt.Errorf("unsupported format %q: supported extensions are %s", ext, supportedExtensions())
	}

	width, err := p.Engine.ProbeWidth(ctx, input)
	if err != nil {
		return fmt.Errorf("probe %s: %w", input, err)
	}
	scale := scaleWidth(width)

	if err := p.Engine.GeneratePalette(ctx, input, palette, scale); err != nil {
		return fmt.Errorf("palette pass: %w", err)
	}

	if err := p.Engine.Encode(ctx, input, palette, output, scale); err != nil {
		return fmt.Errorf("encode pass: %w", err)
	}

	if err := os.Remove(palette); err != nil && !os.IsNotExist(err) {
		p.Console.Warn("Could not remove palette scratch %s: %v", palette, err)
	}

	return nil
}

func (p *Processor) ProcessSingleFile(ctx context.Context, input, base string) error {
	stamp := p.stamp()
	output := outputName(base, stamp)
	palette := paletteName(".", base, stamp)

	p.Console.Info("Converting %s to %s", input, output)

	timer := p.Console.StartTimer("Conversion")
	spinner := p.Console.StartSpinner("Running engine passes")

	err := p.ConvertFile(ctx, input, palette, output)
	if err != nil {
		spinner.Stop(false, fmt.Sprintf("Conversion of %s failed", input))
		return err
	}

	spinner.Stop(true, fmt.Sprintf("Wrote %s", output))
	timer.End()

	return nil
}

func (p *Processor) ProcessDirectory(ctx context.Context, inputDir, outputDir string) error {
	files, err := collectFiles(inputDir)
	if err != nil {
		return fmt.Errorf("file collection error: %w", err)
	}

	if len(files) == 0 {
		p.Console.Warn("No supported video files found in %s", inputDir)
		return nil
	}

	p.Console.Info("Starting batch conversion of %d files from %s", len(files), inputDir)

	result := &BatchResult{TotalFiles: len(files)}
	bar := p.Console.NewProgressBar(int64(len(files)), "Converting videos")

	for _, name := range files {
		input := filepath.Join(inputDir, name)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		stamp := p.stamp()
		output := filepath.Join(outputDir, outputName(base, stamp))
		palette := paletteName(outputDir, base, stamp)

		if err := p.ConvertFile(ctx, input, palette, output); err != nil {
			result.FailedFiles = append(result.FailedFiles, input)
		} else {
			result.ConvertedFiles++
		}

		bar.Advance(name)
	}

	bar.Complete()
	p.displayResults(result)

	if len(result.FailedFiles) > 0 {
		return fmt.Errorf("%d of %d conversions failed", len(result.FailedFiles), result.TotalFiles)
	}

	return nil
}

func (p *Processor) displayResults(result *BatchResult) {
	table := p.Console.NewTable([]string{"Metric", "Value"})
	table.AddRow("Converted files", fmt.Sprintf("%d/%d", result.ConvertedFiles, result.TotalFiles))
	table.AddRow("Failed files", fmt.Sprintf("%d", len(result.FailedFiles)))

	p.Console.Info("Batch Summary:")
	table.Print()

	for _, path := range result.FailedFiles {
		p.Console.Error("Failed to convert: %s", path)
	}
}

func (p *Processor) stamp() string {
	if !p.Timestamp {
		return ""
	}
	return timestampSuffix(p.now())
}

// collectFiles lists supported files directly inside dir, non-recursively,
// in directory-listing order.
func collectFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedFormats[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

func supportedExtensions() string {
	exts := make([]string, 0, len(supportedFormats))
	for ext := range supportedFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, " ")
}
