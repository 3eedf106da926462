package sanitize

import "log/slog"

// SlogValue wraps an already-sanitized Mapping, implementing
// slog.LogValuer.
type SlogValue struct {
	m *Mapping
}

// AsSlogValue wraps m for use with slog.Any.
func AsSlogValue(m *Mapping) SlogValue {
	return SlogValue{m: m}
}

// LogValue implements slog.LogValuer.
func (v SlogValue) LogValue() slog.Value {
	return mappingToSlogValue(v.m)
}

func mappingToSlogValue(m *Mapping) slog.Value {
	if m == nil {
		return slog.GroupValue()
	}
	attrs := make([]slog.Attr, 0, m.Len())
	m.Range(func(k string, v Value) bool {
		attrs = append(attrs, slog.Any(k, valueToSlogAny(v)))
		return true
	})
	return slog.GroupValue(attrs...)
}

func valueToSlogAny(v Value) any {
	switch v.Kind {
	case KindMapping:
		return mappingToSlogValue(v.Mapping)
	case KindSequence:
		out := make([]any, len(v.Sequence))
		for i, e := range v.Sequence {
			out[i] = valueToSlogAny(e)
		}
		return out
	default:
		return v.Scalar
	}
}

// SlogAttr sanitizes tree and returns an slog.Attr ready to log.
func SlogAttr(key string, tree *Mapping, device Device, ctx *Context) slog.Attr {
	return slog.Any(key, AsSlogValue(SanitizeRecord(tree, device, ctx)))
}
