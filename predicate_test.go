package cogitojson

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alethic/cogitojson/pkg/jsonvalue"
)

func isIntegerPred() predicate {
	return funcPred(func(v *jsonvalue.Value) bool {
		return v.Kind() == jsonvalue.Integer
	})
}

func TestPredicateConstantFolding(t *testing.T) {
	one := jsonvalue.NewInteger(1)

	// true AND x folds to x
	p := and(truePred, isIntegerPred())
	assert.False(t, p.isConst)
	assert.True(t, p.finalize()(one))

	// false AND anything folds to false
	p = and(isIntegerPred(), falsePred)
	assert.True(t, p.isConst)
	assert.False(t, p.value)

	// empty conjunction is true, empty disjunction is false
	assert.True(t, and().isConst)
	assert.True(t, and().value)
	assert.True(t, or().isConst)
	assert.False(t, or().value)

	// true OR anything folds to true
	p = or(isIntegerPred(), truePred)
	assert.True(t, p.isConst)
	assert.True(t, p.value)
}

func TestPredicateNegation(t *testing.T) {
	one := jsonvalue.NewInteger(1)
	str := jsonvalue.NewString("x")

	p := isIntegerPred().not()
	assert.False(t, p.finalize()(one))
	assert.True(t, p.finalize()(str))

	// double negation cancels
	p = isIntegerPred().not().not()
	assert.False(t, p.negated)
	assert.True(t, p.finalize()(one))

	// constants flip
	assert.Equal(t, falsePred, truePred.not())
	assert.Equal(t, truePred, falsePred.not())
}

func TestPredicateShortCircuit(t *testing.T) {
	calls := 0
	counting := funcPred(func(*jsonvalue.Value) bool {
		calls++
		return false
	})
	never := funcPred(func(*jsonvalue.Value) bool {
		t.Fatal("short-circuited operand must not run")
		return false
	})

	p := and(counting, never)
	assert.False(t, p.finalize()(jsonvalue.NewNull()))
	assert.Equal(t, 1, calls)
}
