package checksum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Normalize converts an input into the byte sequence that is hashed.
// The returned slice is freshly allocated and owned by the caller.
func Normalize(ctx context.Context, in Input) ([]byte, error) {

	switch v := deref(in).(type) {
	case File:
		return ReadAll(ctx, v)
	case Text:
		// Each invalid byte becomes one U+FFFD
		return []byte(string([]rune(string(v)))), nil
	case Number:
		return []byte(v.String()), nil
	case Buffer:
		buf := make([]byte, len(v))
		copy(buf, v)
		return buf, nil
	case Structured:
		if err := structuredValue(v.Value); err != nil {
			return nil, err
		}
		return Canonical(v.Value)
	}
	return nil, unsupported(in, nil)
}

// deref resolves pointers to inputs. Nil pointers resolve to nil.
func deref(in Input) Input {
	switch v := in.(type) {
	case *File:
		if v != nil {
			return *v
		}
	case *Text:
		if v != nil {
			return *v
		}
	case *Number:
		if v != nil {
			return *v
		}
	case *Buffer:
		if v != nil {
			return *v
		}
	case *Structured:
		if v != nil {
			return *v
		}
	default:
		return in
	}
	return nil
}

// ReadAll reads the full contents of a file. Read errors are returned
// unchanged.
func ReadAll(ctx context.Context, f File) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Reader == nil || isNilPointer(f.Reader) {
		return nil, unsupported(f, fmt.Errorf("file %q has no reader", f.Name))
	}
	return io.ReadAll(f.Reader)
}

// Canonical returns the canonical JSON text of a structured value.
// Map keys are sorted and struct fields appear in declaration order.
// HTML characters are not escaped and there is no trailing newline.
// json.Number values held in generic maps and slices are rewritten to
// the same decimal form as a top-level Number.
func Canonical(v interface{}) ([]byte, error) {
	value, err := canonicalNumbers(v)
	if err != nil {
		return nil, unsupported(v, err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, unsupported(v, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// canonicalNumbers returns a copy of v in which every json.Number inside
// map[string]interface{} and []interface{} containers is replaced by its
// Number form. Other values are returned as-is.
func canonicalNumbers(v interface{}) (interface{}, error) {
	switch x := v.(type) {
	case json.Number:
		in, err := parseJSONNumber(x)
		if err != nil {
			return nil, err
		}
		return json.Number(in.(Number).String()), nil
	case map[string]interface{}:
		m := make(map[string]interface{}, len(x))
		for key, item := range x {
			converted, err := canonicalNumbers(item)
			if err != nil {
				return nil, err
			}
			m[key] = converted
		}
		return m, nil
	case []interface{}:
		items := make([]interface{}, len(x))
		for i, item := range x {
			converted, err := canonicalNumbers(item)
			if err != nil {
				return nil, err
			}
			items[i] = converted
		}
		return items, nil
	}
	return v, nil
}
