package jsonvalue

import (
	"bytes"
	"errors"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// ErrTrailingData is returned by Parse when input continues past the first
// top-level value.
var ErrTrailingData = errors.New("jsonvalue: trailing data after value")

// ErrMalformedNumber is returned when a number literal cannot be decoded.
var ErrMalformedNumber = errors.New("jsonvalue: malformed number literal")

// ErrInvalidKind is returned when a Value carries an unknown kind tag.
var ErrInvalidKind = errors.New("jsonvalue: invalid value kind")

// Parse decodes a single JSON document into a Value tree.
//
// Number literals written without a fraction or exponent become Integer
// values of arbitrary precision; all others become Float. Object member
// order follows the document, and duplicate member names are rejected by
// the underlying decoder.
func Parse(data []byte) (*Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data))
	v, err := parseNext(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}

func parseNext(dec *jsontext.Decoder) (*Value, error) {
	switch dec.PeekKind() {
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		return parseNumber(string(raw))
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := NewArray()
		for dec.PeekKind() != ']' {
			elem, err := parseNext(dec)
			if err != nil {
				return nil, err
			}
			arr.elems = append(arr.elems, elem)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		obj := NewObject()
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			member, err := parseNext(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(name.String(), member)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		switch tok.Kind() {
		case 'n':
			return NewNull(), nil
		case 't':
			return NewBoolean(true), nil
		case 'f':
			return NewBoolean(false), nil
		case '"':
			return NewString(tok.String()), nil
		default:
			return nil, ErrInvalidKind
		}
	}
}

func parseNumber(raw string) (*Value, error) {
	if strings.ContainsAny(raw, ".eE") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, ErrMalformedNumber
		}
		return NewFloat(f), nil
	}
	i, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, ErrMalformedNumber
	}
	return &Value{kind: Integer, i: i}, nil
}

// MarshalJSON implements json.Marshaler, emitting members and elements in
// stored order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := v.encode(enc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (v *Value) encode(enc *jsontext.Encoder) error {
	switch v.kind {
	case Null:
		return enc.WriteToken(jsontext.Null)
	case Boolean:
		return enc.WriteToken(jsontext.Bool(v.b))
	case Integer:
		if v.i.IsInt64() {
			return enc.WriteToken(jsontext.Int(v.i.Int64()))
		}
		return enc.WriteValue(jsontext.Value(v.i.String()))
	case Float:
		// Keep float syntax for integral values: 1.0 must not collapse to
		// the integer literal 1 on a round trip.
		raw := strconv.FormatFloat(v.f, 'g', -1, 64)
		if !strings.ContainsAny(raw, ".eE") {
			raw += ".0"
		}
		return enc.WriteValue(jsontext.Value(raw))
	case String:
		return enc.WriteToken(jsontext.String(v.s))
	case Array:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, elem := range v.elems {
			if err := elem.encode(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case Object:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range v.members {
			if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := m.Value.encode(enc); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return ErrInvalidKind
	}
}
