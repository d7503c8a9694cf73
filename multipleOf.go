package cogitojson

import (
	"math/big"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

// buildMultipleOf compiles the multipleOf keyword as an exact-rational
// divisibility check. Integer documents against an integral divisor use
// big-integer remainder; everything else divides in the rationals.
func buildMultipleOf(s *Schema) predicate {
	divisor := s.MultipleOf.Rat

	var intDivisor *big.Int
	if divisor.IsInt() {
		intDivisor = divisor.Num()
	}

	return funcPred(func(v *jsonvalue.Value) bool {
		if v.Kind() == jsonvalue.Integer && intDivisor != nil {
			if intDivisor.Sign() == 0 {
				return false
			}
			return new(big.Int).Rem(v.Int(), intDivisor).Sign() == 0
		}

		value := ratOf(v)
		if value == nil {
			return true
		}
		if divisor.Sign() == 0 {
			return false
		}
		return new(big.Rat).Quo(value, divisor).IsInt()
	})
}
