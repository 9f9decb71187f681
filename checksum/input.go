package checksum

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
)

// Input is a value that has been classified into one of the supported
// shapes: File, Text, Number, Buffer or Structured.
type Input interface {

	// Kind names the shape of the input, e.g. "binary-file"
	Kind() string

	isInput()
}

// File is a binary file handle. Its full contents are read when the
// checksum is computed. The reader is not closed.
type File struct {
	Name   string
	Reader io.Reader
}

// Text is hashed as its UTF-8 encoding
type Text string

// Buffer is raw binary data, hashed as-is
type Buffer []byte

// Structured is an array, mapping or composite value, hashed as the UTF-8
// encoding of its canonical JSON text
type Structured struct {
	Value interface{}
}

// NewFile returns a File input reading from r
func NewFile(name string, r io.Reader) File {
	return File{Name: name, Reader: r}
}

// Kind implements Input
func (File) Kind() string { return "binary-file" }

// Kind implements Input
func (Text) Kind() string { return "text" }

// Kind implements Input
func (Number) Kind() string { return "number" }

// Kind implements Input
func (Buffer) Kind() string { return "binary-buffer" }

// Kind implements Input. Slices and arrays report "array", everything
// else "object".
func (s Structured) Kind() string {
	rv := reflect.ValueOf(s.Value)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	}
	return "object"
}

func (File) isInput()       {}
func (Text) isInput()       {}
func (Number) isInput()     {}
func (Buffer) isInput()     {}
func (Structured) isInput() {}

type namer interface {
	Name() string
}

// Classify determines the shape of an arbitrary value. It fails with an
// *UnsupportedTypeError if the value matches none of the supported shapes.
func Classify(v interface{}) (Input, error) {

	switch x := v.(type) {
	case nil:
		return nil, unsupported(v, nil)
	case Input:
		return x, nil
	case []byte:
		return Buffer(x), nil
	case string:
		return Text(x), nil
	case json.Number:
		return parseJSONNumber(x)
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case uintptr:
		return Uint(uint64(x)), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float(x), nil
	case io.Reader:
		if isNilPointer(x) {
			return nil, unsupported(v, nil)
		}
		f := File{Reader: x}
		if n, ok := x.(namer); ok {
			f.Name = n.Name()
		}
		return f, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil, unsupported(v, nil)
		}
		return Classify(rv.Elem().Interface())
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil
	case reflect.Float32:
		return Float32(float32(rv.Float())), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Buffer(rv.Bytes()), nil
		}
		if rv.IsNil() {
			return nil, unsupported(v, nil)
		}
		return Structured{Value: v}, nil
	case reflect.Map:
		if rv.IsNil() {
			return nil, unsupported(v, nil)
		}
		return Structured{Value: v}, nil
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return Buffer(b), nil
		}
		return Structured{Value: v}, nil
	case reflect.Struct:
		return Structured{Value: v}, nil
	}
	return nil, unsupported(v, nil)
}

// isNilPointer reports whether v holds a typed nil pointer
func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

// structuredValue checks that v is a non-nil slice, array, map or struct,
// following pointers
func structuredValue(v interface{}) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return unsupported(v, nil)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return unsupported(v, nil)
		}
		return nil
	case reflect.Array, reflect.Struct:
		return nil
	}
	return unsupported(v, nil)
}

func parseJSONNumber(n json.Number) (Input, error) {
	if i, err := n.Int64(); err == nil {
		return Int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, unsupported(n, err)
	}
	return Float(f), nil
}

func unsupported(v interface{}, err error) error {
	typeName := "nil"
	if v != nil {
		typeName = fmt.Sprintf("%T", v)
	}
	return &UnsupportedTypeError{Type: typeName, Err: err}
}
