package wire

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToJSON converts an element tree to its JSON form: {"root": ...}.
//
// Elements with children become objects, repeated sibling names become
// arrays and type="array" elements become arrays of their children. Leaves
// become strings unless typed integer, decimal or boolean; nil="true" becomes
// null. An empty untyped root or array item is an entity with no fields and
// becomes {}.
func ToJSON(n *Node) map[string]any {
	if isEmptyElement(n) {
		return map[string]any{n.Name(): map[string]any{}}
	}

	return map[string]any{n.Name(): jsonOf(n)}
}

func isEmptyElement(n *Node) bool {
	return !n.IsNil() && n.Attr(attrType) == "" && len(n.Children) == 0 && strings.TrimSpace(n.Text) == ""
}

func jsonOf(n *Node) any {
	if n.IsNil() {
		return nil
	}

	typ := n.Attr(attrType)

	if typ == TypeArray {
		arr := make([]any, 0, len(n.Children))
		for _, c := range n.Children {
			if isEmptyElement(c) {
				arr = append(arr, map[string]any{})

				continue
			}

			arr = append(arr, jsonOf(c))
		}

		return arr
	}

	if len(n.Children) > 0 {
		return jsonObject(n.Children)
	}

	return jsonScalar(n.Text, typ)
}

func jsonObject(children []*Node) map[string]any {
	counts := make(map[string]int, len(children))
	for _, c := range children {
		counts[c.Name()]++
	}

	obj := make(map[string]any, len(counts))

	for _, c := range children {
		name := c.Name()
		if counts[name] == 1 {
			obj[name] = jsonOf(c)

			continue
		}

		list, _ := obj[name].([]any)
		obj[name] = append(list, jsonOf(c))
	}

	return obj
}

func jsonScalar(text, typ string) any {
	trimmed := strings.TrimSpace(text)

	switch typ {
	case TypeInteger:
		if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return json.Number(trimmed)
		}
	case TypeDecimal:
		if _, err := decimal.NewFromString(trimmed); err == nil && json.Valid([]byte(trimmed)) {
			return json.Number(trimmed)
		}
	case TypeBoolean:
		if b, err := strconv.ParseBool(trimmed); err == nil {
			return b
		}
	}

	return text
}

// MarshalJSON renders n in its JSON form.
func MarshalJSON(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilNode
	}

	out, err := json.Marshal(ToJSON(n))
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	return out, nil
}

// XMLToJSON converts an XML document to the equivalent JSON document.
func XMLToJSON(data []byte) ([]byte, error) {
	root, err := ParseXML(data)
	if err != nil {
		return nil, err
	}

	return MarshalJSON(root)
}
