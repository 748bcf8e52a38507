package recordrepo

import (
	"bytes"
	"encoding/json"
	"errors"

	pagedomain "github.com/10Narratives/pager/internal/domains/pagination"
)

// Decode parses a JSON object into a record. Integral numbers become int64
// and other numbers float64, so stored records compare equal to the ones written.
func Decode(b []byte) (pagedomain.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var rec pagedomain.Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("record is null")
	}
	for k, v := range rec {
		rec[k] = normalizeNumber(v)
	}
	return rec, nil
}

func normalizeNumber(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		for k, vv := range t {
			t[k] = normalizeNumber(vv)
		}
		return t
	case []any:
		for i := range t {
			t[i] = normalizeNumber(t[i])
		}
		return t
	default:
		return v
	}
}
