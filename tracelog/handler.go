package tracelog

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/muesli/termenv"
)

// consoleHandler writes "LEVEL: message key=value" lines, colouring the
// level when the writer is a terminal.
type consoleHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	out   *termenv.Output
	attrs []string
	group string
}

func newConsoleHandler(w io.Writer) *consoleHandler {
	return &consoleHandler{
		mu:  &sync.Mutex{},
		w:   w,
		out: termenv.NewOutput(w),
	}
}

func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	lvl := GetLevel()
	return lvl != LevelNone && fromSlog(l) >= lvl
}

func (h *consoleHandler) levelColor(l Level) termenv.Color {
	switch l {
	case LevelTrace, LevelDebug:
		return h.out.Color("8")
	case LevelInfo:
		return h.out.Color("4")
	case LevelWarning:
		return h.out.Color("3")
	}
	return h.out.Color("1")
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	level := fromSlog(r.Level)

	var buf bytes.Buffer
	buf.WriteString(h.out.String(level.String()).Foreground(h.levelColor(level)).Bold().String())
	buf.WriteString(": ")
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		buf.WriteString(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		buf.WriteString(h.format(a))
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

// format renders a as " group.key=value" using the handler's current group.
func (h *consoleHandler) format(a slog.Attr) string {
	if a.Equal(slog.Attr{}) {
		return ""
	}
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	return " " + key + "=" + a.Value.Resolve().String()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]string{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, h.format(a))
	}
	return &nh
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "." + name
	} else {
		nh.group = name
	}
	return &nh
}
