package sanitize

import "go.uber.org/zap/zapcore"

// ZapObject wraps an already-sanitized Mapping for zap logging, mirroring
// the Mapping record tree.
type ZapObject struct {
	m *Mapping
}

// AsZapObject wraps m for use with zap.Object().
func AsZapObject(m *Mapping) ZapObject {
	return ZapObject{m: m}
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (z ZapObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return marshalZapMapping(enc, z.m)
}

func marshalZapMapping(enc zapcore.ObjectEncoder, m *Mapping) error {
	if m == nil {
		return nil
	}
	var err error
	m.Range(func(k string, v Value) bool {
		err = addZapField(enc, k, v)
		return err == nil
	})
	return err
}

func addZapField(enc zapcore.ObjectEncoder, key string, v Value) error {
	switch v.Kind {
	case KindMapping:
		mv := v.Mapping
		return enc.AddObject(key, zapcore.ObjectMarshalerFunc(func(inner zapcore.ObjectEncoder) error {
			return marshalZapMapping(inner, mv)
		}))
	case KindSequence:
		seq := v.Sequence
		return enc.AddArray(key, zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
			return marshalZapSequence(arr, seq)
		}))
	default:
		return addZapScalar(enc, key, v.Scalar)
	}
}

func addZapScalar(enc zapcore.ObjectEncoder, key string, scalar any) error {
	switch val := scalar.(type) {
	case string:
		enc.AddString(key, val)
	case int64:
		enc.AddInt64(key, val)
	case float64:
		enc.AddFloat64(key, val)
	case bool:
		enc.AddBool(key, val)
	default:
		return enc.AddReflected(key, val)
	}
	return nil
}

func marshalZapSequence(arr zapcore.ArrayEncoder, seq []Value) error {
	for _, v := range seq {
		switch v.Kind {
		case KindMapping:
			mv := v.Mapping
			if err := arr.AppendObject(zapcore.ObjectMarshalerFunc(func(inner zapcore.ObjectEncoder) error {
				return marshalZapMapping(inner, mv)
			})); err != nil {
				return err
			}
		case KindSequence:
			if err := arr.AppendReflected(v.Sequence); err != nil {
				return err
			}
		default:
			if err := appendZapScalar(arr, v.Scalar); err != nil {
				return err
			}
		}
	}
	return nil
}

// ZapField sanitizes tree and wraps the result for attaching to a logger
// call with zap.Object(key, ...).
func ZapField(tree *Mapping, device Device, ctx *Context) ZapObject {
	return AsZapObject(SanitizeRecord(tree, device, ctx))
}

func appendZapScalar(arr zapcore.ArrayEncoder, scalar any) error {
	switch val := scalar.(type) {
	case string:
		arr.AppendString(val)
	case int64:
		arr.AppendInt64(val)
	case float64:
		arr.AppendFloat64(val)
	case bool:
		arr.AppendBool(val)
	default:
		return arr.AppendReflected(val)
	}
	return nil
}
