package wire

import (
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Value is a read-only view over one decoded payload node in either wire
// format: an XML element or a JSON value. Entity decoders walk Values so the
// same field mapping serves both formats.
type Value struct {
	node  *Node
	json  any
	isXML bool
}

// XMLValue wraps an XML element.
func XMLValue(n *Node) Value {
	return Value{node: n, isXML: true}
}

// JSONValue wraps a JSON value as produced by ParseJSON.
func JSONValue(v any) Value {
	return Value{json: v}
}

// IsXML reports whether the value wraps an XML element.
func (v Value) IsXML() bool { return v.isXML }

// Node returns the wrapped XML element, or nil for JSON values.
func (v Value) Node() *Node { return v.node }

// IsNull reports an absent value: JSON null, a missing element or nil="true".
func (v Value) IsNull() bool {
	if v.isXML {
		return v.node.IsNil()
	}

	return v.json == nil
}

// IsObject reports whether the value has named children.
func (v Value) IsObject() bool {
	if v.isXML {
		return v.node != nil && !v.node.IsLeaf()
	}

	_, ok := v.json.(map[string]any)

	return ok
}

// Each calls fn for every direct child in document order (XML) or key order
// (JSON). Iteration stops at the first error.
func (v Value) Each(fn func(name string, child Value) error) error {
	if v.isXML {
		if v.node == nil {
			return nil
		}

		for _, c := range v.node.Children {
			err := fn(c.Name(), XMLValue(c))
			if err != nil {
				return err
			}
		}

		return nil
	}

	obj, ok := v.json.(map[string]any)
	if !ok {
		return nil
	}

	for _, key := range slices.Sorted(maps.Keys(obj)) {
		err := fn(key, JSONValue(obj[key]))
		if err != nil {
			return err
		}
	}

	return nil
}

// Items returns the children of a homogeneous list named item, along with
// the number of raw children seen. A difference between the two means the
// list held something other than item entries.
//
// XML lists are the element children of v. JSON lists are arrays whose
// entries are either bare objects or single-key {"item": {...}} wrappers; an
// object keyed by item is also accepted.
func (v Value) Items(item string) ([]Value, int) {
	if v.isXML {
		if v.node.IsNil() {
			return nil, 0
		}

		var items []Value

		for _, c := range v.node.Children {
			if c.Name() == item {
				items = append(items, XMLValue(c))
			}
		}

		return items, len(v.node.Children)
	}

	switch t := v.json.(type) {
	case []any:
		return jsonItems(t, item)
	case map[string]any:
		inner, ok := t[item]
		if !ok {
			return nil, len(t)
		}

		if arr, isArr := inner.([]any); isArr {
			return jsonItems(arr, item)
		}

		return jsonItems([]any{inner}, item)
	default:
		return nil, 0
	}
}

func jsonItems(arr []any, item string) ([]Value, int) {
	var items []Value

	for _, raw := range arr {
		obj, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		if inner, wrapped := UnwrapJSON(obj, item); wrapped {
			obj = inner
		}

		items = append(items, JSONValue(obj))
	}

	return items, len(arr)
}

// UnwrapJSON returns the inner object of {"key": {...}}. The second result
// is false when obj is not exactly such a single-key wrapper.
func UnwrapJSON(obj map[string]any, key string) (map[string]any, bool) {
	if len(obj) != 1 {
		return nil, false
	}

	inner, ok := obj[key].(map[string]any)

	return inner, ok
}

// String decodes a string leaf.
func (v Value) String() string {
	if v.isXML {
		return XMLString(v.node)
	}

	return JSONString(v.json)
}

// Int decodes an integer leaf.
func (v Value) Int() int {
	if v.isXML {
		return XMLInt(v.node)
	}

	return JSONInt(v.json)
}

// Int64 decodes an integer leaf.
func (v Value) Int64() int64 {
	if v.isXML {
		return XMLInt64(v.node)
	}

	return JSONInt64(v.json)
}

// Decimal decodes a decimal leaf.
func (v Value) Decimal() decimal.Decimal {
	if v.isXML {
		return XMLDecimal(v.node)
	}

	return JSONDecimal(v.json)
}

// Bool decodes a boolean leaf.
func (v Value) Bool() bool {
	if v.isXML {
		return XMLBool(v.node)
	}

	return JSONBool(v.json)
}

// Time decodes a timestamp leaf.
func (v Value) Time() time.Time {
	if v.isXML {
		return XMLTime(v.node)
	}

	return JSONTime(v.json)
}

// present reports whether an optional leaf carries a value.
func (v Value) present() bool {
	return !v.IsNull() && v.String() != ""
}

// IntPtr decodes an optional integer leaf; absent or empty yields nil.
func (v Value) IntPtr() *int {
	if !v.present() {
		return nil
	}

	i := v.Int()

	return &i
}

// Int64Ptr decodes an optional integer leaf; absent or empty yields nil.
func (v Value) Int64Ptr() *int64 {
	if !v.present() {
		return nil
	}

	i := v.Int64()

	return &i
}

// DecimalPtr decodes an optional decimal leaf; absent or empty yields nil.
func (v Value) DecimalPtr() *decimal.Decimal {
	if !v.present() {
		return nil
	}

	d := v.Decimal()

	return &d
}

// BoolPtr decodes an optional boolean leaf; absent or empty yields nil.
func (v Value) BoolPtr() *bool {
	if !v.present() {
		return nil
	}

	b := v.Bool()

	return &b
}
