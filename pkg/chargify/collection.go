package chargify

import (
	"fmt"

	"github.com/fivetwenty-io/chargify-client/pkg/wire"
)

// DecodeList converts a list response into a map keyed by key.
//
// XML bodies hold a wrapper element with repeated item children; an empty
// list may also arrive as a bare childless root such as
// <nil-classes type="array"/>. JSON bodies are a top-level array, or an
// object whose only key is wrapper holding that array, with each entry either
// bare or wrapped in a single item key. A key seen twice fails with a
// *DuplicateKeyError.
func DecodeList[K comparable, T any, PT EntityPtr[T]](body []byte, wrapper, item string, key func(*T) K) (map[K]T, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return nil, err
	}

	var list wire.Value

	if doc.xml != nil {
		w := doc.xml.Find(wrapper)
		if w == nil {
			if doc.xml.IsLeaf() {
				return map[K]T{}, nil
			}

			return nil, fmt.Errorf("%w: no <%s> list in <%s> document", ErrMalformedResponse, wrapper, doc.xml.Name())
		}

		list = wire.XMLValue(w)
	} else {
		arr, ok := jsonList(doc.json, wrapper)
		if !ok {
			return nil, fmt.Errorf("%w: expected a JSON array of %q", ErrMalformedResponse, item)
		}

		list = wire.JSONValue(arr)
	}

	entries, err := decodeNested[T, PT](list, item)
	if err != nil {
		return nil, err
	}

	out := make(map[K]T, len(entries))

	for i := range entries {
		k := key(&entries[i])
		if _, dup := out[k]; dup {
			return nil, &DuplicateKeyError{Key: k}
		}

		out[k] = entries[i]
	}

	return out, nil
}

func jsonList(v any, wrapper string) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case map[string]any:
		if len(t) != 1 {
			return nil, false
		}

		arr, ok := t[wrapper].([]any)

		return arr, ok
	default:
		return nil, false
	}
}

// Merge adds the entries of page that dst does not already hold and returns
// how many were skipped. Pages of a multi-page listing may repeat entries
// when the remote data shifts between requests; the first copy wins and the
// repeat is not an error.
func Merge[K comparable, T any](dst, page map[K]T) int {
	skipped := 0

	for k, v := range page {
		if _, seen := dst[k]; seen {
			skipped++

			continue
		}

		dst[k] = v
	}

	return skipped
}
