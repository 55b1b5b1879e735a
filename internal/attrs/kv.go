package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one directive argument. Flag marks a bare key, Quoted marks
// a key="..." value with Raw holding the unquoted text.
type Value struct {
	Raw    string
	Quoted bool
	Flag   bool
}

// KV is a consume-style view over directive arguments. A repeated key
// overwrites in place, keeping its first position. Callers take the
// keys they understand out of the set; whatever remains afterwards is
// unrecognized.
type KV struct {
	order  []string
	values map[string]Value
}

// ParseDirective splits a directive's argument text into a consumable
// key set. Items are whitespace-separated key, key=ident or key="..."
// pairs; quoted values may contain spaces.
func ParseDirective(args string) (*KV, error) {
	tokens, err := splitArgs(args)
	if err != nil {
		return nil, err
	}
	kv := &KV{values: make(map[string]Value)}
	for _, tok := range tokens {
		key, raw, hasValue := strings.Cut(tok, "=")
		if key == "" {
			return nil, fmt.Errorf("malformed item %q", tok)
		}
		value := Value{Flag: !hasValue}
		if hasValue {
			if strings.HasPrefix(raw, `"`) {
				unquoted, err := strconv.Unquote(raw)
				if err != nil {
					return nil, fmt.Errorf("malformed quoted value for key %q", key)
				}
				value = Value{Raw: unquoted, Quoted: true}
			} else {
				value = Value{Raw: raw}
			}
		}
		if _, seen := kv.values[key]; !seen {
			kv.order = append(kv.order, key)
		}
		kv.values[key] = value
	}
	return kv, nil
}

// splitArgs breaks the argument text on spaces and tabs, keeping
// double-quoted stretches intact. A backslash inside quotes escapes the
// next byte, so a \" does not end the stretch.
func splitArgs(s string) ([]string, error) {
	var tokens []string
	var b strings.Builder
	inQuote := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote:
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inQuote = false
			}
		case c == '"':
			inQuote = true
			b.WriteByte(c)
		case c == ' ' || c == '\t':
			if b.Len() > 0 {
				tokens = append(tokens, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quoted value")
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens, nil
}

// Take removes the key and returns its value.
func (kv *KV) Take(key string) (Value, bool) {
	v, ok := kv.values[key]
	if !ok {
		return Value{}, false
	}
	delete(kv.values, key)
	for i, k := range kv.order {
		if k == key {
			kv.order = append(kv.order[:i], kv.order[i+1:]...)
			break
		}
	}
	return v, true
}

// Remaining returns the keys nobody consumed, in their original order.
func (kv *KV) Remaining() []string {
	if len(kv.order) == 0 {
		return nil
	}
	return append([]string(nil), kv.order...)
}
