// Package encoding serializes domain models and collections into the plain
// data that views hand to templates.
//
// Types can opt into a fast path by implementing Dataer or Lister;
// everything else round-trips through msgpack, which flattens structs and
// maps into map[string]any without per-type code.
package encoding

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// Dataer is implemented by models that serialize themselves.
type Dataer interface {
	SerializeData() map[string]any
}

// Lister is implemented by collections that serialize themselves.
type Lister interface {
	SerializeItems() []any
}

// Sentinel errors for serialization failures.
var (
	ErrNotData = errors.New("encoding: value does not serialize to a data map")
	ErrNotList = errors.New("encoding: value does not serialize to an item list")
)

// ToData converts a model into template data. Dataer implementations and
// plain maps pass through; other values round-trip through msgpack.
func ToData(v any) (map[string]any, error) {
	switch t := v.(type) {
	case Dataer:
		return t.SerializeData(), nil
	case map[string]any:
		return t, nil
	}

	packed, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := msgpack.Unmarshal(packed, &data); err != nil {
		return nil, errors.Join(ErrNotData, err)
	}
	return data, nil
}

// ToItems converts a collection into a flat item list. Lister
// implementations and plain slices pass through; other values round-trip
// through msgpack.
func ToItems(v any) ([]any, error) {
	switch t := v.(type) {
	case Lister:
		return t.SerializeItems(), nil
	case []any:
		return t, nil
	case []map[string]any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = item
		}
		return items, nil
	}

	packed, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	var items []any
	if err := msgpack.Unmarshal(packed, &items); err != nil {
		return nil, errors.Join(ErrNotList, err)
	}
	return items, nil
}
