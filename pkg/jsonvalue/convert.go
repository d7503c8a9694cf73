package jsonvalue

import (
	"fmt"
	"math/big"
	"slices"
)

// From converts a plain Go value into the tagged model. Supported inputs
// are nil, bool, the integer kinds, float32/float64, string, *big.Int,
// []any, map[string]any (members added in sorted key order), *Value
// (returned as-is) and []*Value. Anything else is an error.
func From(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return NewNull(), nil
	case *Value:
		return x, nil
	case bool:
		return NewBoolean(x), nil
	case int:
		return NewInteger(int64(x)), nil
	case int8:
		return NewInteger(int64(x)), nil
	case int16:
		return NewInteger(int64(x)), nil
	case int32:
		return NewInteger(int64(x)), nil
	case int64:
		return NewInteger(x), nil
	case uint:
		return NewBigInteger(new(big.Int).SetUint64(uint64(x))), nil
	case uint8:
		return NewInteger(int64(x)), nil
	case uint16:
		return NewInteger(int64(x)), nil
	case uint32:
		return NewInteger(int64(x)), nil
	case uint64:
		return NewBigInteger(new(big.Int).SetUint64(x)), nil
	case *big.Int:
		return NewBigInteger(x), nil
	case float32:
		return NewFloat(float64(x)), nil
	case float64:
		return NewFloat(x), nil
	case string:
		return NewString(x), nil
	case []*Value:
		return NewArray(x...), nil
	case []any:
		elems := make([]*Value, len(x))
		for i, elem := range x {
			converted, err := From(elem)
			if err != nil {
				return nil, err
			}
			elems[i] = converted
		}
		return NewArray(elems...), nil
	case map[string]any:
		obj := NewObject()
		keys := make([]string, 0, len(x))
		for key := range x {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			converted, err := From(x[key])
			if err != nil {
				return nil, err
			}
			obj.Set(key, converted)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("jsonvalue: cannot convert %T", v)
	}
}

// MustFrom is From for statically known inputs; it panics on unsupported
// types.
func MustFrom(v any) *Value {
	converted, err := From(v)
	if err != nil {
		panic(err)
	}
	return converted
}
