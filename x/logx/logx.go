// x/logx/logx.go

// Package logx writes "[tag] message key=value" console lines without fmt,
// so it stays small on MCU builds. Output defaults to stdout (USB CDC on
// TinyGo) and can be pointed at a UART by the platform bootstrap.
package logx

import (
	"io"
	"os"
	"strconv"
	"sync"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

type stringer interface{ String() string }

var (
	mu    sync.Mutex
	out   io.Writer = os.Stdout
	level           = LevelInfo
	line  []byte
)

// SetOutput redirects all log lines. nil restores stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	if w == nil {
		w = os.Stdout
	}
	out = w
	mu.Unlock()
}

// SetLevel drops lines below l.
func SetLevel(l Level) {
	mu.Lock()
	level = l
	mu.Unlock()
}

// Enabled reports whether lines at l are written.
func Enabled(l Level) bool {
	mu.Lock()
	defer mu.Unlock()
	return l >= level
}

func Debug(tag, msg string, kv ...any) { write(LevelDebug, tag, msg, kv) }
func Info(tag, msg string, kv ...any)  { write(LevelInfo, tag, msg, kv) }
func Warn(tag, msg string, kv ...any)  { write(LevelWarn, tag, msg, kv) }
func Error(tag, msg string, kv ...any) { write(LevelError, tag, msg, kv) }

func write(l Level, tag, msg string, kv []any) {
	mu.Lock()
	defer mu.Unlock()
	if l < level {
		return
	}
	b := line[:0]
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, "] "...)
	if l != LevelInfo {
		b = append(b, l.String()...)
		b = append(b, ": "...)
	}
	b = append(b, msg...)
	for i := 0; i < len(kv); i += 2 {
		b = append(b, ' ')
		if k, ok := kv[i].(string); ok {
			b = append(b, k...)
		} else {
			b = append(b, '?')
		}
		b = append(b, '=')
		if i+1 < len(kv) {
			b = appendValue(b, kv[i+1])
		}
	}
	b = append(b, '\n')
	_, _ = out.Write(b)
	line = b
}

func appendValue(b []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(b, "nil"...)
	case string:
		return append(b, x...)
	case bool:
		return strconv.AppendBool(b, x)
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case int8:
		return strconv.AppendInt(b, int64(x), 10)
	case int16:
		return strconv.AppendInt(b, int64(x), 10)
	case int32:
		return strconv.AppendInt(b, int64(x), 10)
	case int64:
		return strconv.AppendInt(b, x, 10)
	case uint:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(b, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(b, x, 10)
	case float32:
		return strconv.AppendFloat(b, float64(x), 'f', 3, 32)
	case float64:
		return strconv.AppendFloat(b, x, 'f', 3, 64)
	case error:
		return append(b, x.Error()...)
	case stringer:
		return append(b, x.String()...)
	default:
		return append(b, '?')
	}
}
