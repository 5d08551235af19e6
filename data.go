package wirework

import (
	"errors"

	"github.com/pthm/wirework/lib/encoding"
)

// Dataer is an alias for encoding.Dataer for convenience.
type Dataer = encoding.Dataer

// Lister is an alias for encoding.Lister for convenience.
type Lister = encoding.Lister

// AsData converts a model into template data. See encoding.ToData.
func AsData(v any) (map[string]any, error) {
	data, err := encoding.ToData(v)
	return data, wrapEncodingError(err)
}

// AsItems converts a collection into a flat item list. See encoding.ToItems.
func AsItems(v any) ([]any, error) {
	items, err := encoding.ToItems(v)
	return items, wrapEncodingError(err)
}

// wrapEncodingError maps encoding package errors onto the wirework sentinel.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrNotData) || errors.Is(err, encoding.ErrNotList) {
		return errors.Join(ErrNotSerializable, err)
	}
	return err
}
