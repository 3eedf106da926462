package sanitize

import "time"

const sanitizationVersion = "1.0"

// SanitizeRecord is the engine's public entry point:
// sanitize_record(tree, device, context) -> tree. It never mutates tree;
// the returned Mapping is a fresh allocation. device is accepted for
// interface parity with the domain sanitizers that gate on
// capabilities before reaching the engine — the recursive walk itself does
// not consult permissions.
func SanitizeRecord(tree *Mapping, device Device, ctx *Context) *Mapping {
	if tree == nil {
		tree = NewMapping()
	}
	out := sanitizeMapping(tree, ctx)
	if ctx.IncludeMeta {
		stampMetadata(out)
	}
	return out
}

// sanitizeMapping walks one mapping level via recursive
// descent, iterating entries in insertion order.
func sanitizeMapping(m *Mapping, ctx *Context) *Mapping {
	out := NewMapping()
	m.Range(func(key string, v Value) bool {
		action, kind := classify(key, ctx)
		activeMetrics.RecordDecision(DecisionContext{DataType: ctx.DataType, FieldName: key, Action: action, MaskKind: kind})
		if action == Drop {
			return true
		}

		switch v.Kind {
		case KindMapping:
			if v.Mapping == nil {
				return true
			}
			out.Set(key, FromMapping(sanitizeMapping(v.Mapping, ctx)))
		case KindSequence:
			out.Set(key, FromSequence(sanitizeSequence(key, v.Sequence, ctx)))
		default:
			sanitized, keep := sanitizeScalar(v.Scalar, action, kind, ctx)
			if keep {
				out.Set(key, Scalar(sanitized))
			}
		}
		return true
	})
	return out
}

// sanitizeSequence sanitizes each element of a sequence under the parent
// key's classification: mapping elements recurse, scalar elements go
// through the scalar path using the parent key's action/kind.
func sanitizeSequence(parentKey string, seq []Value, ctx *Context) []Value {
	action, kind := classify(parentKey, ctx)
	out := make([]Value, 0, len(seq))
	for _, v := range seq {
		switch v.Kind {
		case KindMapping:
			if v.Mapping == nil {
				continue
			}
			out = append(out, FromMapping(sanitizeMapping(v.Mapping, ctx)))
		case KindSequence:
			out = append(out, FromSequence(sanitizeSequence(parentKey, v.Sequence, ctx)))
		default:
			sanitized, keep := sanitizeScalar(v.Scalar, action, kind, ctx)
			if keep {
				out = append(out, Scalar(sanitized))
			}
		}
	}
	return out
}

// sanitizeScalar applies a classification verdict to one scalar value. null
// values are always dropped. Mask verdicts only apply to strings (the
// maskers are all string transformers); other scalar types pass through
// unchanged under a Mask verdict since there is nothing to mask. Pass
// verdicts apply SSN/IPv4 pattern redaction to strings; under strict mode,
// an otherwise-Pass field is dropped instead, since an unclassified field
// is "unknown" and strict mode defaults unknowns to drop.
func sanitizeScalar(value any, action Action, kind MaskKind, ctx *Context) (any, bool) {
	if value == nil {
		return nil, false
	}

	switch action {
	case Mask:
		s, ok := value.(string)
		if !ok {
			return value, true
		}
		return applyMask(kind, s), true

	case Pass:
		if ctx.StrictMode {
			return nil, false
		}
		s, ok := value.(string)
		if !ok {
			return value, true
		}
		return redactSSNAndIPv4(s, "[SSN-REDACTED]", "[IP-REDACTED]"), true

	default: // Drop already filtered by caller; unreachable in practice
		return nil, false
	}
}

// stampMetadata appends the sanitization metadata tags at the root, in the
// fixed order the output contract requires.
func stampMetadata(m *Mapping) {
	m.SetScalar("_sanitized", true)
	m.SetScalar("_sanitizedAt", time.Now().Format("2006-01-02T15:04:05"))
	m.SetScalar("_sanitizationVersion", sanitizationVersion)
}
