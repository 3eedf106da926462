package sanitize

import "github.com/rs/zerolog"

// ZerologObject wraps an already-sanitized Mapping for zerolog logging.
// Implements zerolog.LogObjectMarshaler over the order-preserving Mapping.
type ZerologObject struct {
	m *Mapping
}

// AsZerologObject wraps m for use with zerolog's Object()/Dict() calls.
func AsZerologObject(m *Mapping) ZerologObject {
	return ZerologObject{m: m}
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (z ZerologObject) MarshalZerologObject(e *zerolog.Event) {
	marshalZerologMapping(e, z.m)
}

func marshalZerologMapping(e *zerolog.Event, m *Mapping) {
	if m == nil {
		return
	}
	m.Range(func(k string, v Value) bool {
		addZerologField(e, k, v)
		return true
	})
}

func addZerologField(e *zerolog.Event, key string, v Value) {
	switch v.Kind {
	case KindMapping:
		e.Object(key, zerologMappingMarshaler{m: v.Mapping})
	case KindSequence:
		e.Array(key, zerologSequenceMarshaler{seq: v.Sequence})
	default:
		addZerologScalar(e, key, v.Scalar)
	}
}

func addZerologScalar(e *zerolog.Event, key string, scalar any) {
	switch val := scalar.(type) {
	case string:
		e.Str(key, val)
	case int64:
		e.Int64(key, val)
	case float64:
		e.Float64(key, val)
	case bool:
		e.Bool(key, val)
	case nil:
		e.Interface(key, nil)
	default:
		e.Interface(key, val)
	}
}

type zerologMappingMarshaler struct{ m *Mapping }

func (zm zerologMappingMarshaler) MarshalZerologObject(e *zerolog.Event) {
	marshalZerologMapping(e, zm.m)
}

type zerologSequenceMarshaler struct{ seq []Value }

func (zs zerologSequenceMarshaler) MarshalZerologArray(a *zerolog.Array) {
	for _, v := range zs.seq {
		switch v.Kind {
		case KindMapping:
			a.Object(zerologMappingMarshaler{m: v.Mapping})
		case KindSequence:
			a.Interface(v.Sequence)
		default:
			addZerologArrayScalar(a, v.Scalar)
		}
	}
}

func addZerologArrayScalar(a *zerolog.Array, scalar any) {
	switch val := scalar.(type) {
	case string:
		a.Str(val)
	case int64:
		a.Int64(val)
	case float64:
		a.Float64(val)
	case bool:
		a.Bool(val)
	default:
		a.Interface(val)
	}
}

// ZerologField sanitizes tree and wraps the result for attaching to an
// event with e.Object(key, ...), so callers don't need a separate
// SanitizeRecord call before logging.
func ZerologField(tree *Mapping, device Device, ctx *Context) ZerologObject {
	return AsZerologObject(SanitizeRecord(tree, device, ctx))
}
