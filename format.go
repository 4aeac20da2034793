package zerg

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// FormatErrorMarker prefixes the payload produced for a malformed format
// string. The record is still enqueued; no error reaches the caller.
const FormatErrorMarker = "[format error]"

// dumper renders values with no scalar representation, bounded in depth. The
// dump spans several lines; the strip and hex sanitisation policies remove or
// encode its line breaks, the raw policy keeps them.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Format renders a brace-style format string. Placeholders are `{}` with an
// optional explicit argument index and an optional spec after ':', e.g.
// `{}`, `{0}`, `{:.1f}`, `{1:08x}`. Literal braces are written `{{` and `}}`.
func Format(format string, args ...any) string {
	if !strings.ContainsAny(format, "{}") {
		return format
	}

	buf := make([]byte, 0, len(format)+16)
	autoIdx := 0
	i := 0
	for i < len(format) {
		c := format[i]
		switch c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				buf = append(buf, '{')
				i += 2
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return formatError(format)
			}
			field := format[i+1 : i+1+end]
			i += end + 2

			idxStr := field
			spec := ""
			if colon := strings.IndexByte(field, ':'); colon >= 0 {
				idxStr, spec = field[:colon], field[colon+1:]
			}

			argIdx := autoIdx
			if idxStr == "" {
				autoIdx++
			} else {
				n, err := strconv.Atoi(idxStr)
				if err != nil {
					return formatError(format)
				}
				argIdx = n
			}
			if argIdx < 0 || argIdx >= len(args) {
				return formatError(format)
			}

			var ok bool
			buf, ok = appendFormatted(buf, args[argIdx], spec)
			if !ok {
				return formatError(format)
			}
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				buf = append(buf, '}')
				i += 2
				continue
			}
			return formatError(format)
		default:
			buf = append(buf, c)
			i++
		}
	}
	return string(buf)
}

func formatError(format string) string {
	return FormatErrorMarker + " " + format
}

// appendFormatted renders one argument under its placeholder spec. The spec
// subset is [0][width][.precision][type] with printf-compatible types.
func appendFormatted(buf []byte, v any, spec string) ([]byte, bool) {
	if spec == "" {
		return appendValue(buf, v), true
	}

	verb := byte('v')
	mods := spec
	if last := spec[len(spec)-1]; last < '0' || last > '9' {
		if last == '.' {
			return buf, false
		}
		verb = last
		mods = spec[:len(spec)-1]
	}

	switch verb {
	case 'f', 'F', 'e', 'E', 'g', 'G':
		if verb == 'F' {
			verb = 'f'
		}
		v = toFloat(v)
	case 'd', 'b', 'o', 'x', 'X', 'c':
	case 's', 'q', 'v':
	default:
		return buf, false
	}

	// Width/precision modifiers: digits with at most one dot
	dots := 0
	for j := 0; j < len(mods); j++ {
		switch {
		case mods[j] == '.':
			dots++
			if dots > 1 {
				return buf, false
			}
		case mods[j] < '0' || mods[j] > '9':
			return buf, false
		}
	}

	return fmt.Appendf(buf, "%"+mods+string(verb), v), true
}

// toFloat widens integer arguments for float placeholders so `{:.1f}` accepts
// both 1 and 1.0.
func toFloat(v any) any {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	default:
		return v
	}
}

// appendValue renders an argument with no spec.
func appendValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case []byte:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int8:
		return strconv.AppendInt(buf, int64(val), 10)
	case int16:
		return strconv.AppendInt(buf, int64(val), 10)
	case int32:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint8:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint16:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint32:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'g', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, timestampLayout)
	case time.Duration:
		return append(buf, val.String()...)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		// Structs, maps, pointers: delegate to spew for a bounded dump
		var b bytes.Buffer
		dumper.Fdump(&b, val)
		return append(buf, bytes.TrimSpace(b.Bytes())...)
	}
}

// appendLine renders the on-disk form of a record, without the trailing
// newline (the sink emits that separately, after sanitisation).
func appendLine(buf []byte, now time.Time, rec Record) []byte {
	buf = now.AppendFormat(buf, timestampLayout)
	buf = append(buf, " ["...)
	buf = append(buf, rec.Level.String()...)
	buf = append(buf, "] "...)
	buf = append(buf, baseName(rec.File)...)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(rec.Line), 10)
	buf = append(buf, ' ')
	buf = append(buf, rec.Payload...)
	return buf
}
