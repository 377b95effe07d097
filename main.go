package main

import (
	"context"
	"os"

	"github.com/mujasoft/gif4docs/logger"
)

func main() {
	console := logger.NewConsole(logger.DefaultOptions())

	cfg, err := ParseConfig(console, os.Args[1:])
	if err != nil {
		os.Stderr.WriteString("Configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	engine := NewEngine(cfg)
	if err := engine.Check(); err != nil {
		console.Error("Dependency error: %v", err)
		os.Exit(1)
	}

	installInterruptCleanup(console, ".", cfg.OutputDir)

	processor := NewProcessor(cfg, engine, console)

	if err := processor.Run(context.Background(), cfg); err != nil {
		console.Error("Processing error: %v", err)
		os.Exit(1)
	}

	console.Success("All processing completed successfully")
}
