package cogitojson

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// Rat wraps a big.Rat to enable custom JSON marshaling and unmarshaling.
// Schema numerics are kept exact so comparisons and divisibility checks do
// not accumulate floating-point error.
type Rat struct {
	*big.Rat
}

// UnmarshalJSON implements the json.Unmarshaler interface for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}

	r.Rat = converted
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formatted := FormatRat(r)
	if strings.Contains(formatted, "/") {
		// Still a fraction after formatting; emit as a JSON string.
		return json.Marshal(formatted)
	}
	return []byte(formatted), nil
}

// convertToBigRat converts various types to big.Rat.
func convertToBigRat(data interface{}) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedRatType
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrRatConversion
	}
	return numRat, nil
}

// NewRat creates a new Rat instance from a given value, or nil when the
// value has no exact rational form.
func NewRat(value interface{}) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// FormatRat formats a Rat as a string.
func FormatRat(r *Rat) string {
	if r == nil || r.Rat == nil {
		return "null"
	}

	if r.IsInt() {
		return r.Num().String()
	}

	dec := r.FloatString(10)

	trimmed := strings.TrimRight(dec, "0")
	trimmed = strings.TrimRight(trimmed, ".")

	if trimmed == "" {
		return "0"
	}

	return trimmed
}

// ratOf converts a numeric JSON value to an exact rational. Returns nil for
// non-numeric values.
func ratOf(v *jsonvalue.Value) *big.Rat {
	switch v.Kind() {
	case jsonvalue.Integer:
		return new(big.Rat).SetInt(v.Int())
	case jsonvalue.Float:
		r := new(big.Rat)
		if _, ok := r.SetString(fmt.Sprint(v.Float())); !ok {
			return nil
		}
		return r
	default:
		return nil
	}
}
