// Package logger provides the terminal output layer: a slog-based rich
// handler plus a Console facade with spinners, progress bars and tables.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

type Console struct {
	Logger *slog.Logger
	Out    io.Writer

	successStyle *color.Color
	infoStyle    *color.Color
	warnStyle    *color.Color
	errorStyle   *color.Color
	fatalStyle   *color.Color
}

func NewConsole(opts *RichLoggerOptions) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	c := &Console{
		Logger:       NewRichLogger(opts),
		Out:          opts.Output,
		successStyle: color.New(color.FgGreen, color.Bold),
		infoStyle:    color.New(color.FgBlue, color.Bold),
		warnStyle:    color.New(color.FgYellow, color.Bold),
		errorStyle:   color.New(color.FgRed, color.Bold),
		fatalStyle:   color.New(color.BgRed, color.FgWhite, color.Bold),
	}

	if !opts.EnableColors {
		for _, s := range []*color.Color{
			c.successStyle, c.infoStyle, c.warnStyle, c.errorStyle, c.fatalStyle,
		} {
			s.DisableColor()
		}
	}

	return c
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) Success(format string, args ...interface{}) {
	c.Logger.Info(c.successStyle.Sprint("✓ " + fmt.Sprintf(format, args...)))
}

func (c *Console) Info(format string, args ...interface{}) {
	c.Logger.Info(c.infoStyle.Sprint("ℹ " + fmt.Sprintf(format, args...)))
}

func (c *Console) Log(format string, args ...interface{}) {
	c.Logger.Info(fmt.Sprintf(format, args...))
}

func (c *Console) Warn(format string, args ...interface{}) {
	c.Logger.Warn(c.warnStyle.Sprint("⚠ " + fmt.Sprintf(format, args...)))
}

func (c *Console) Error(format string, args ...interface{}) {
	c.Logger.Error(c.errorStyle.Sprint("✖ " + fmt.Sprintf(format, args...)))
}

func (c *Console) Fatal(format string, args ...interface{}) {
	c.Logger.Error(c.fatalStyle.Sprint("💀 " + fmt.Sprintf(format, args...)))
	os.Exit(1)
}

func (c *Console) StartSpinner(message string) *Spinner {
	s := &Spinner{
		Message: message,
		Frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Console: c,
		Done:    make(chan bool),
	}

	s.Start()
	return s
}

func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	return NewProgressBar(total, label, c.Out)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers, c.Out)
}

func (c *Console) Box(title string, content string) {
	lines := strings.Split(content, "\n")
	maxWidth := len(title)

	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	maxWidth += 4

	fmt.Fprintln(c.Out, "┌"+"─"+title+"─"+strings.Repeat("─", maxWidth-len(title)-2)+"┐")

	for _, line := range lines {
		fmt.Fprintln(c.Out, "│ "+line+strings.Repeat(" ", maxWidth-len(line))+" │")
	}

	fmt.Fprintln(c.Out, "└"+strings.Repeat("─", maxWidth+2)+"┘")
}
