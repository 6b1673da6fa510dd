package log

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// TerminalHandler formats log records as coloured terminal output.
//
// Output format:
//
//	15:04:05.000 INF record saved sheet="Ohio - Meters" qty=11
//
// Attributes attached with WithAttrs are rendered once, when attached,
// and replayed in front of every record's own attributes.
type TerminalHandler struct {
	writer   io.Writer
	level    slog.Leveler
	rendered []byte // output of WithAttrs, already formatted
	prefix   string // group qualifier for attributes added later
	mu       *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	level := slog.Leveler(slog.LevelInfo)
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &TerminalHandler{
		writer: w,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record as coloured terminal output and writes it.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf = append(buf, ansiDim...)
	buf = ts.AppendFormat(buf, "15:04:05.000")
	buf = append(buf, ansiReset...)
	buf = append(buf, ' ')

	colour, label := levelStyle(r.Level)
	buf = append(buf, colour...)
	buf = append(buf, label...)
	buf = append(buf, ansiReset...)
	buf = append(buf, ' ')

	buf = append(buf, ansiBold...)
	buf = append(buf, r.Message...)
	buf = append(buf, ansiReset...)

	buf = append(buf, h.rendered...)

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, a, h.prefix)
		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf)
	return err
}

// WithAttrs returns a handler that replays attrs ahead of each record's
// own attributes. The attrs are formatted here, once.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]byte, len(h.rendered), len(h.rendered)+32*len(attrs))
	copy(rendered, h.rendered)
	for _, a := range attrs {
		rendered = appendAttr(rendered, a, h.prefix)
	}

	clone := *h
	clone.rendered = rendered
	return &clone
}

// WithGroup returns a handler that qualifies the keys of attributes
// added later with the group name. Already-rendered attributes keep
// their original keys.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return ansiCyan, "DBG"
	case level < slog.LevelWarn:
		return ansiGreen, "INF"
	case level < slog.LevelError:
		return ansiYellow, "WRN"
	default:
		return ansiRed, "ERR"
	}
}

// appendAttr renders one attribute as ` key=value`, flattening groups
// into dotted keys. Empty attrs vanish, matching slog conventions.
func appendAttr(buf []byte, a slog.Attr, prefix string) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	if a.Value.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, ga, p)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, ansiDim...)
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	buf = append(buf, ansiReset...)
	buf = append(buf, formatAttrValue(a.Value)...)
	return buf
}

func formatAttrValue(v slog.Value) string {
	if v.Kind() == slog.KindString {
		s := v.String()
		if strings.ContainsAny(s, " \t\n\"\\") {
			return strconv.Quote(s)
		}
		return s
	}
	return v.String()
}
