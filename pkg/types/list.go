package types

import "encoding/json"

// List decodes a JSON array element by element and drops elements that fail
// to decode. A value that is not an array decodes as an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		*l = List[T]{}
		return nil
	}

	out := make(List[T], 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			continue
		}
		out = append(out, v)
	}

	*l = out

	return nil
}
