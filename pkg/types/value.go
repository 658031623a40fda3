// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindNull is the zero Kind.
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindObject
)

// String returns the JSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is a JSON-like value: null, bool, number, string, ordered list or
// ordered key-value object. Example payloads and inline annotation examples
// are carried as Values so that key order survives encoding.
type Value struct {
	kind    Kind
	b       bool
	n       float64
	s       string
	items   []Value
	members []Member
}

// Member is a single key-value pair of an object Value.
type Member struct {
	Key   string
	Value Value
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list Value holding items in order.
func List(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindList, items: items}
}

// Object returns an object Value holding members in order.
// A later member with a duplicate key replaces the earlier one in place.
func Object(members ...Member) Value {
	v := Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, m := range members {
		v = v.With(m.Key, m.Value)
	}
	return v
}

// M builds a Member.
func M(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// Ptr returns a pointer to a copy of v.
func (v Value) Ptr() *Value {
	return &v
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload.
func (v Value) AsBool() bool { return v.b }

// AsNumber returns the numeric payload.
func (v Value) AsNumber() float64 { return v.n }

// AsString returns the string payload.
func (v Value) AsString() string { return v.s }

// Items returns the elements of a list Value.
func (v Value) Items() []Value { return v.items }

// Members returns the members of an object Value in order.
func (v Value) Members() []Member { return v.members }

// Keys returns the object keys in order.
func (v Value) Keys() []string {
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Get returns the member value for key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// With returns a copy of the object v with key set to value.
// Existing keys keep their position.
func (v Value) With(key string, value Value) Value {
	out := Value{kind: KindObject, members: make([]Member, len(v.members), len(v.members)+1)}
	copy(out.members, v.members)
	for i, m := range out.members {
		if m.Key == key {
			out.members[i].Value = value
			return out
		}
	}
	out.members = append(out.members, Member{Key: key, Value: value})
	return out
}

// Len returns the number of list items or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Equal reports deep equality, including object key order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.members) != len(o.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != o.members[i].Key || !v.members[i].Value.Equal(o.members[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// FromAny converts a value produced by encoding/json or yaml decoding into a
// Value. Map keys are sorted since Go maps carry no order.
func FromAny(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case float64:
		return Number(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case []interface{}:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return List(items...)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, len(keys))
		for i, k := range keys {
			members[i] = M(k, FromAny(t[k]))
		}
		return Object(members...)
	default:
		return String(fmt.Sprint(t))
	}
}

// ParseJSON decodes exactly one JSON value from data.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func decodeJSON(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var members []Member
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("invalid object key %v", keyTok)
				}
				val, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				members = append(members, M(key, val))
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Object(members...), nil
		case '[':
			items := []Value{}
			for dec.More() {
				val, err := decodeJSON(dec)
				if err != nil {
					return Value{}, err
				}
				items = append(items, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return List(items...), nil
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// MarshalJSON encodes v preserving object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		buf.WriteString(formatNumber(v.n))
	case KindString:
		s, err := json.Marshal(v.s)
		if err != nil {
			return err
		}
		buf.Write(s)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := m.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		buf.WriteString("null")
	}
	return nil
}

// UnmarshalJSON decodes any JSON value into v.
func (v *Value) UnmarshalJSON(data []byte) error {
	val, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

// MarshalYAML encodes v as a yaml.v3 node so key order is preserved.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		tag := "!!float"
		if v.n == math.Trunc(v.n) && math.Abs(v.n) < 1e15 {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: formatNumber(v.n)}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindList:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			node.Content = append(node.Content, item.yamlNode())
		}
		return node
	case KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.members {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				m.Value.yamlNode(),
			)
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// UnmarshalYAML decodes a yaml.v3 node into v.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	val, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func fromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := fromYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			val, err := fromYAMLNode(node.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			members = append(members, M(node.Content[i].Value, val))
		}
		return Object(members...), nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(node.Value)
			if err != nil {
				return String(node.Value), nil
			}
			return Bool(b), nil
		case "!!int", "!!float":
			f, err := strconv.ParseFloat(node.Value, 64)
			if err != nil {
				return String(node.Value), nil
			}
			return Number(f), nil
		default:
			return String(node.Value), nil
		}
	default:
		return Value{}, fmt.Errorf("unsupported YAML node kind %d", node.Kind)
	}
}

func formatNumber(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "null"
	}
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
