package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mujasoft/gif4docs/logger"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	InputFile  string
	OutputBase string
	InputDir   string
	OutputDir  string
	Timestamp  bool

	FPS        int    `env:"GIF4DOCS_FPS" envDefault:"10"`
	FFmpegBin  string `env:"GIF4DOCS_FFMPEG" envDefault:"ffmpeg"`
	FFprobeBin string `env:"GIF4DOCS_FFPROBE" envDefault:"ffprobe"`
}

var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func ParseConfig(console *logger.Console, args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment error: %w", err)
	}

	fs := flag.NewFlagSet("gif4docs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.InputFile, "i", "", "Input video file (single-file mode)")
	fs.StringVar(&cfg.OutputBase, "o", "output", "Output basename (single-file mode)")
	fs.StringVar(&cfg.InputDir, "d", "", "Input directory (batch mode)")
	fs.StringVar(&cfg.OutputDir, "k", "", "Output directory (batch mode, defaults to input directory)")
	fs.BoolVar(&cfg.Timestamp, "t", false, "Append a timestamp to output filenames")

	showVersion := fs.Bool("v", false, "Show version information")
	fs.BoolVar(showVersion, "version", *showVersion, "Show version information")

	fs.Usage = func() { printUsage(console, fs) }

	if err := fs.Parse(args); err != nil {
		// flag has already run fs.Usage for both cases.
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		return nil, err
	}

	if *showVersion {
		versionInfo := fmt.Sprintf(
			"Version: %s\nBuild date: %s\nGit commit: %s",
			Version, BuildDate, GitCommit,
		)
		console.Box("gif4docs version information", versionInfo)
		os.Exit(0)
	}

	oSet, kSet := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			oSet = true
		case "k":
			kSet = true
		}
	})

	if err := cfg.validate(oSet, kSet); err != nil {
		fs.Usage()
		return nil, err
	}

	if err := cfg.checkPaths(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate(oSet, kSet bool) error {
	switch {
	case cfg.InputFile == "" && cfg.InputDir == "":
		return fmt.Errorf("error: no input specified, use -i <file> or -d <directory>")
	case cfg.InputFile != "" && cfg.InputDir != "":
		return fmt.Errorf("error: -i and -d are mutually exclusive")
	case cfg.InputDir != "" && oSet:
		return fmt.Errorf("error: -o applies to single-file mode, use -k to pick a batch output directory")
	case cfg.InputFile != "" && kSet:
		return fmt.Errorf("error: -k applies to batch mode, use -o to name the output")
	}

	if cfg.FPS < 1 {
		return fmt.Errorf("error: GIF4DOCS_FPS must be at least 1")
	}

	return nil
}

func (cfg *Config) checkPaths() error {
	if cfg.InputFile != "" {
		info, err := os.Stat(cfg.InputFile)
		if err != nil {
			return fmt.Errorf("error: %v", err)
		}
		if info.IsDir() {
			return fmt.Errorf("error: %s is a directory, use -d for batch mode", cfg.InputFile)
		}
		return nil
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("error: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("error: %s is not a directory", cfg.InputDir)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.InputDir
	}

	info, err = os.Stat(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("error: output directory: %v", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("error: output directory %s is not a directory", cfg.OutputDir)
	}

	probe, err := os.CreateTemp(cfg.OutputDir, ".gif4docs-*")
	if err != nil {
		return fmt.Errorf("error: output directory %s is not writable: %v", cfg.OutputDir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return nil
}

// BatchMode reports whether the run converts a whole directory.
func (cfg *Config) BatchMode() bool {
	return cfg.InputDir != ""
}

func printUsage(console *logger.Console, fs *flag.FlagSet) {
	console.Info("Usage: gif4docs -i <file> [-o <basename>] [-t]")
	console.Info("       gif4docs -d <directory> [-k <directory>] [-t]")
	console.Info("Options:")

	r, w, _ := os.Pipe()
	fs.SetOutput(w)

	fs.PrintDefaults()

	w.Close()
	fs.SetOutput(io.Discard)

	var buf [8192]byte
	n, _ := r.Read(buf[:])
	r.Close()

	for _, line := range strings.Split(string(buf[:n]), "\n") {
		if line != "" {
			console.Log("  %s", line)
		}
	}
}
