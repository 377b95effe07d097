package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type RichLoggerOptions struct {
	Output           io.Writer
	TimeFormat       string
	Level            slog.Level
	AddSource        bool
	EnableColors     bool
	EnableSeparators bool
}

func DefaultOptions() *RichLoggerOptions {
	return &RichLoggerOptions{
		Level:            slog.LevelInfo,
		AddSource:        false,
		EnableColors:     true,
		TimeFormat:       "2006-01-02 15:04:05.000",
		Output:           os.Stdout,
		EnableSeparators: true,
	}
}

type RichHandler struct {
	opts   *RichLoggerOptions
	mu     sync.Mutex
	attrs  []slog.Attr
	groups []string

	timeStyle   *color.Color
	sourceStyle *color.Color
	msgStyle    *color.Color
	levelStyles map[slog.Level]*color.Color
}

func NewRichHandler(opts *RichLoggerOptions) *RichHandler {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	h := &RichHandler{
		opts:        opts,
		timeStyle:   color.New(color.FgBlue),
		sourceStyle: color.New(color.FgMagenta),
		msgStyle:    color.New(color.FgWhite, color.Bold),
		levelStyles: map[slog.Level]*color.Color{
			slog.LevelDebug: color.New(color.FgCyan, color.Bold),
			slog.LevelInfo:  color.New(color.FgGreen, color.Bold),
			slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
			slog.LevelError: color.New(color.FgRed, color.Bold),
		},
	}

	if !opts.EnableColors {
		for _, s := range []*color.Color{h.timeStyle, h.sourceStyle, h.msgStyle} {
			s.DisableColor()
		}
		for _, s := range h.levelStyles {
			s.DisableColor()
		}
	}

	return h
}

func (h *RichHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *RichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *RichHandler) WithGroup(name string) slog.Handler {
	h2 := h.clone()
	h2.groups = append(h2.groups, name)
	return h2
}

func (h *RichHandler) clone() *RichHandler {
	h2 := &RichHandler{
		opts:        h.opts,
		attrs:       make([]slog.Attr, len(h.attrs)),
		groups:      make([]string, len(h.groups)),
		timeStyle:   h.timeStyle,
		sourceStyle: h.sourceStyle,
		msgStyle:    h.msgStyle,
		levelStyles: h.levelStyles,
	}
	copy(h2.attrs, h.attrs)
	copy(h2.groups, h.groups)
	return h2
}

func (h *RichHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var builder strings.Builder

	builder.WriteString(h.timeStyle.Sprint(record.Time.Format(h.opts.TimeFormat)))
	builder.WriteString(" ")

	levelStyle, ok := h.levelStyles[record.Level]
	if !ok {
		levelStyle = h.msgStyle
	}
	builder.WriteString(levelStyle.Sprintf("%-5s", strings.ToUpper(record.Level.String())))
	builder.WriteString(" ")

	if h.opts.AddSource && record.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := fs.Next()
		sourceFile := f.File
		if lastSlash := strings.LastIndex(sourceFile, "/"); lastSlash >= 0 {
			sourceFile = sourceFile[lastSlash+1:]
		}
		builder.WriteString(h.sourceStyle.Sprintf("%s:%d", sourceFile, f.Line))
		builder.WriteString(" ")
	}

	builder.WriteString(h.msgStyle.Sprint(record.Message))

	appendAttr := func(a slog.Attr) bool {
		builder.WriteString(" ")
		builder.WriteString(h.sourceStyle.Sprintf("%s=%v", a.Key, a.Value.Any()))
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	record.Attrs(appendAttr)

	if h.opts.EnableSeparators {
		builder.WriteString("\n")
		builder.WriteString(h.timeStyle.Sprint(strings.Repeat("─", 80)))
	}

	_, err := fmt.Fprintln(h.opts.Output, builder.String())
	return err
}

func NewRichLogger(opts *RichLoggerOptions) *slog.Logger {
	if opts == nil {
		opts = DefaultOptions()
	}
	return slog.New(NewRichHandler(opts))
}
