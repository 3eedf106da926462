// Package sanitize implements the data sanitization gateway: a schema-agnostic
// engine that redacts, masks, and pseudonymizes outbound records before they
// cross the trust boundary of a student information system.
//
// The sanitizer is stateless and safe for concurrent use after construction:
// policy tables and compiled patterns are built once and never mutated.
package sanitize

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tags the runtime shape of a Value node.
type Kind int

const (
	// KindScalar marks a leaf: string, int64, float64, bool, or nil.
	KindScalar Kind = iota
	// KindMapping marks an order-preserving string-keyed node.
	KindMapping
	// KindSequence marks an ordered list of Values.
	KindSequence
)

// Value is a tagged variant over the record tree's three shapes. Record trees
// are schema-agnostic by design: callers
// build them directly rather than via reflection over arbitrary structs.
type Value struct {
	Kind     Kind
	Scalar   any // valid when Kind == KindScalar: string, int64, float64, bool, or nil
	Mapping  *Mapping
	Sequence []Value
}

// Scalar builds a scalar Value.
func Scalar(v any) Value { return Value{Kind: KindScalar, Scalar: v} }

// FromMapping builds a Value wrapping a Mapping.
func FromMapping(m *Mapping) Value { return Value{Kind: KindMapping, Mapping: m} }

// FromSequence builds a Value wrapping a sequence of Values.
func FromSequence(seq []Value) Value { return Value{Kind: KindSequence, Sequence: seq} }

// entry is one key/value pair of a Mapping, kept in insertion order.
type entry struct {
	key   string
	value Value
}

// Mapping is an order-preserving string-keyed node of a record tree. Plain
// Go maps do not preserve insertion order, which the engine's output
// contract requires (remaining keys surface in the order they were
// inserted), so Mapping is a small slice-backed structure instead.
type Mapping struct {
	entries []entry
	index   map[string]int
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Set inserts or overwrites a key's value, preserving the key's original
// position on overwrite and appending on first insertion.
func (m *Mapping) Set(key string, v Value) {
	if i, ok := m.index[key]; ok {
		m.entries[i].value = v
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry{key: key, value: v})
}

// SetScalar is shorthand for Set(key, Scalar(v)).
func (m *Mapping) SetScalar(key string, v any) {
	m.Set(key, Scalar(v))
}

// Get returns the value for key and whether it was present.
func (m *Mapping) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.entries[i].value, true
}

// Delete removes a key if present.
func (m *Mapping) Delete(key string) {
	i, ok := m.index[key]
	if !ok {
		return
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for k, idx := range m.index {
		if idx > i {
			m.index[k] = idx - 1
		}
	}
}

// Len returns the number of keys.
func (m *Mapping) Len() int { return len(m.entries) }

// Keys returns the keys in insertion order.
func (m *Mapping) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// Range calls fn for each entry in insertion order. Stops early if fn
// returns false.
func (m *Mapping) Range(fn func(key string, v Value) bool) {
	for _, e := range m.entries {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Clone deep-copies the Mapping. The engine does not call it: it builds
// fresh output Mappings and never writes to its input.
func (m *Mapping) Clone() *Mapping {
	out := NewMapping()
	m.Range(func(k string, v Value) bool {
		out.Set(k, v.Clone())
		return true
	})
	return out
}

// Clone deep-copies a Value.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindMapping:
		if v.Mapping == nil {
			return v
		}
		return FromMapping(v.Mapping.Clone())
	case KindSequence:
		seq := make([]Value, len(v.Sequence))
		for i, e := range v.Sequence {
			seq[i] = e.Clone()
		}
		return FromSequence(seq)
	default:
		return v
	}
}

// MarshalJSON renders the Value back to JSON, preserving Mapping key order.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindMapping:
		if v.Mapping == nil {
			return []byte("null"), nil
		}
		return v.Mapping.MarshalJSON()
	case KindSequence:
		parts := make([]json.RawMessage, len(v.Sequence))
		for i, e := range v.Sequence {
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			parts[i] = b
		}
		return json.Marshal(parts)
	default:
		return json.Marshal(v.Scalar)
	}
}

// MarshalJSON renders the Mapping as a JSON object, preserving key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	buf := []byte{'{'}
	for i, e := range m.entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		val, err := e.value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// ParseJSON decodes a JSON object into an order-preserving record tree,
// using json.Decoder's token stream so that Mapping key order matches the
// source document instead of the random order map[string]any unmarshaling
// would produce.
func ParseJSON(data []byte) (*Mapping, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("sanitize: parse JSON: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("sanitize: parse JSON: expected top-level object")
	}
	m, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("sanitize: parse JSON: %w", err)
	}
	return m, nil
}

func decodeObject(dec *json.Decoder) (*Mapping, error) {
	m := NewMapping()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("non-string object key")
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, v)
	}
	// consume closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeArray(dec *json.Decoder) ([]Value, error) {
	var seq []Value
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return seq, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			m, err := decodeObject(dec)
			if err != nil {
				return Value{}, err
			}
			return FromMapping(m), nil
		case '[':
			seq, err := decodeArray(dec)
			if err != nil {
				return Value{}, err
			}
			return FromSequence(seq), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Scalar(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Scalar(f), nil
	case nil:
		return Scalar(nil), nil
	default:
		return Scalar(t), nil
	}
}
