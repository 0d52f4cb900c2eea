package chargify

import (
	"fmt"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// Entity is a domain type that can be decoded from and encoded to either wire
// format. It is implemented by pointers to the entity types of this package.
type Entity interface {
	rootName() string
	decodeValue(v wire.Value) error
	node() *wire.Node
}

// EntityPtr constrains PT to be *T for an entity type T, letting the generic
// decoders allocate a T and fill it through its pointer.
type EntityPtr[T any] interface {
	*T
	Entity
}

// document is a response body parsed in whichever format it arrived in.
type document struct {
	xml  *wire.Node
	json any
}

// parseDocument classifies and parses body in one pass, XML first, with the
// same outcome as wire.Detect.
func parseDocument(body []byte) (document, error) {
	root, err := wire.ParseXML(body)
	if err == nil {
		return document{xml: root}, nil
	}

	v, err := wire.ParseJSON(body)
	if err == nil {
		return document{json: v}, nil
	}

	return document{}, ErrUnsupportedResponseFormat
}

// Decode converts a response body into a T.
//
// XML bodies must contain an element named rootKey, which is decoded. A JSON
// body must be an object; when it has exactly one key and that key is rootKey
// the wrapped object is decoded, otherwise the object itself is.
func Decode[T any, PT EntityPtr[T]](body []byte, rootKey string) (*T, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	if doc.xml != nil {
		n := doc.xml.Find(rootKey)
		if n == nil {
			return nil, fmt.Errorf("%w: no <%s> element in <%s> document", ErrMalformedResponse, rootKey, doc.xml.Name())
		}

		return decodeValue[T, PT](wire.XMLValue(n))
	}

	obj, ok := doc.json.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object for %q", ErrMalformedResponse, rootKey)
	}

	if inner, wrapped := wire.UnwrapJSON(obj, rootKey); wrapped {
		obj = inner
	}

	return decodeValue[T, PT](wire.JSONValue(obj))
}

// Parse decodes a raw body whose root is the entity's own element or key.
func Parse[T any, PT EntityPtr[T]](body []byte) (*T, error) {
	return Decode[T, PT](body, PT(new(T)).rootName())
}

// FromXML decodes an already parsed element, which must be named after the
// entity.
func FromXML[T any, PT EntityPtr[T]](n *wire.Node) (*T, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil XML element", ErrInvalidArgument)
	}

	root := PT(new(T)).rootName()
	if n.Name() != root {
		return nil, fmt.Errorf("%w: expected <%s>, got <%s>", ErrMalformedResponse, root, n.Name())
	}

	return decodeValue[T, PT](wire.XMLValue(n))
}

// FromJSON decodes an already parsed JSON object, either bare or wrapped in a
// single key named after the entity.
func FromJSON[T any, PT EntityPtr[T]](obj map[string]any) (*T, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil JSON object", ErrInvalidArgument)
	}

	if inner, wrapped := wire.UnwrapJSON(obj, PT(new(T)).rootName()); wrapped {
		obj = inner
	}

	return decodeValue[T, PT](wire.JSONValue(obj))
}

func decodeValue[T any, PT EntityPtr[T]](v wire.Value) (*T, error) {
	out := new(T)

	err := PT(out).decodeValue(v)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// decodeNested decodes a homogeneous child list of item entries. Any child
// that is not an item entry fails the whole decode.
func decodeNested[T any, PT EntityPtr[T]](v wire.Value, item string) ([]T, error) {
	items, raw := v.Items(item)
	if len(items) != raw {
		return nil, fmt.Errorf("%w: %d of %d entries are <%s>", ErrDecodeCountMismatch, len(items), raw, item)
	}

	if raw == 0 {
		return nil, nil
	}

	out := make([]T, 0, len(items))

	for _, it := range items {
		var entry T

		err := PT(&entry).decodeValue(it)
		if err != nil {
			return nil, fmt.Errorf("decoding <%s>: %w", item, err)
		}

		out = append(out, entry)
	}

	return out, nil
}

// encodeNested appends list as a typed array; empty lists are omitted.
func encodeNested[T any, PT EntityPtr[T]](n *wire.Node, name string, list []T) {
	if len(list) == 0 {
		return
	}

	arr := n.AddArray(name)
	for i := range list {
		arr.AddChild(PT(&list[i]).node())
	}
}

// Encode renders an entity in the given format.
func Encode(e Entity, format wire.Format) ([]byte, error) {
	switch format {
	case wire.FormatXML:
		return wire.MarshalXML(e.node())
	case wire.FormatJSON:
		return wire.MarshalJSON(e.node())
	default:
		return nil, fmt.Errorf("%w: %s", wire.ErrUnknownFormat, format)
	}
}
