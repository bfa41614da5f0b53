package objcase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// Parse decodes a single JSON document into a Value, keeping object keys in
// document order. A repeated key keeps its first position and its last
// value.
func Parse(b []byte) (Value, error) {
	var v Value
	if err := v.UnmarshalJSON(b); err != nil {
		return Value{}, err
	}
	return v, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *Value) UnmarshalJSON(b []byte) error {
	out, err := decodeDocument(newDecoder(bytes.NewReader(b)))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// decodeDocument reads one value and requires the input to end after it.
func decodeDocument(dec *json.Decoder) (Value, error) {
	v, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("invalid JSON: trailing data after top-level value")
	}
	return v, nil
}

func newDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		n, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %s: %w", t, err)
		}
		return Number(n), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected JSON token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	o := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		o.Set(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return o.Value(), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("%d: %w", len(arr), err)
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Array(arr...), nil
}

// MarshalJSON implements [json.Marshaler] with JSON.stringify rules:
// undefined and function members are left out of objects, become null
// inside arrays, and a top-level undefined or function encodes as null.
// Non-finite numbers encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler].
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.Value().MarshalJSON()
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindUndefined, KindNull, KindFunc:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			buf.WriteString("null")
			return nil
		}
		b, err := json.Marshal(v.n)
		if err != nil {
			return err
		}
		buf.Write(b)
	case KindString:
		return encodeString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		first := true
		for _, key := range v.obj.keys {
			elem := v.obj.vals[key]
			if elem.kind == KindUndefined || elem.kind == KindFunc {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode value of kind %s", v.kind)
	}
	return nil
}

// encodeString writes s as a JSON string without escaping <, > and &.
func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// UnmarshalSnakeToCamel parses JSON with snake_case keys, converts every
// key to camelCase and decodes the result into dst.
func UnmarshalSnakeToCamel(b []byte, dst any) error {
	return unmarshalMapped(b, dst, SnakeObjectToCamel)
}

// UnmarshalCamelToSnake parses JSON with camelCase keys, converts every
// key to snake_case and decodes the result into dst.
func UnmarshalCamelToSnake(b []byte, dst any) error {
	return unmarshalMapped(b, dst, CamelObjectToSnake)
}

// DecodeSnakeToCamel is like [UnmarshalSnakeToCamel] but reads the
// document from r. Use it when reading directly from an [io.Reader] such
// as an HTTP request body.
func DecodeSnakeToCamel(r io.Reader, dst any) error {
	return decodeMapped(r, dst, SnakeObjectToCamel)
}

// DecodeCamelToSnake is like [UnmarshalCamelToSnake] but reads the
// document from r.
func DecodeCamelToSnake(r io.Reader, dst any) error {
	return decodeMapped(r, dst, CamelObjectToSnake)
}

func decodeMapped(r io.Reader, dst any, convert func(Value) Value) error {
	v, err := decodeDocument(newDecoder(r))
	if err != nil {
		return err
	}
	return remarshal(convert(v), dst)
}

func unmarshalMapped(b []byte, dst any, convert func(Value) Value) error {
	v, err := Parse(b)
	if err != nil {
		return err
	}
	return remarshal(convert(v), dst)
}

func remarshal(v Value, dst any) error {
	b, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
