package match

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"chainflow/internal/typeflow"
)

var (
	textID   = typeflow.Named("Text")
	numberID = typeflow.Named("Number")
	intID    = typeflow.Named("Int")
	objectID = typeflow.Named("Object")
)

func TestVerdict_String(t *testing.T) {
	tests := []struct {
		verdict  Verdict
		expected string
	}{
		{VerdictIdentical, "identical"},
		{VerdictConvertible, "convertible"},
		{VerdictNullabilityMismatch, "nullability_mismatch"},
		{VerdictIncompatible, "incompatible"},
		{Verdict(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.verdict.String())
		})
	}
}

func TestRule_Accepts(t *testing.T) {
	rule := NewRule(NewTable(
		Conversion{From: intID, To: numberID},
		Conversion{From: textID, To: objectID},
	))

	tests := []struct {
		name     string
		flowing  typeflow.TypeDescriptor
		declared typeflow.TypeDescriptor
		expected Verdict
	}{
		{"identical reference", typeflow.Ref(textID), typeflow.Ref(textID), VerdictIdentical},
		{"identical nullable reference", typeflow.NullableRef(textID), typeflow.NullableRef(textID), VerdictIdentical},
		{"identical value", typeflow.Val(numberID), typeflow.Val(numberID), VerdictIdentical},
		{"nullable into non-null reference", typeflow.NullableRef(textID), typeflow.Ref(textID), VerdictNullabilityMismatch},
		{"non-null into nullable reference", typeflow.Ref(textID), typeflow.NullableRef(textID), VerdictNullabilityMismatch},
		{"widening value", typeflow.Val(intID), typeflow.Val(numberID), VerdictConvertible},
		{"widening reference", typeflow.Ref(textID), typeflow.Ref(objectID), VerdictConvertible},
		{"widening keeps nullability strict", typeflow.NullableRef(textID), typeflow.Ref(objectID), VerdictNullabilityMismatch},
		{"no reverse widening", typeflow.Val(numberID), typeflow.Val(intID), VerdictIncompatible},
		{"unrelated", typeflow.Ref(textID), typeflow.Val(numberID), VerdictIncompatible},
		{"optional does not unwrap", typeflow.OptionalOf(numberID), typeflow.Val(numberID), VerdictNullabilityMismatch},
		{"value lifts into optional", typeflow.Val(numberID), typeflow.OptionalOf(numberID), VerdictConvertible},
		{"optional widens into optional", typeflow.OptionalOf(intID), typeflow.OptionalOf(numberID), VerdictConvertible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, rule.verdict(tt.flowing, tt.declared))
			assert.Equal(t, tt.expected.Accepted(), rule.Accepts(tt.flowing, tt.declared))
		})
	}
}

func TestRule_IdentityDoesNotConsultOracle(t *testing.T) {
	var calls atomic.Int32

	rule := NewRule(OracleFunc(func(_, _ typeflow.TypeID) bool {
		calls.Add(1)
		return false
	}))

	assert.True(t, rule.Accepts(typeflow.Ref(textID), typeflow.Ref(textID)))
	assert.False(t, rule.Accepts(typeflow.NullableRef(textID), typeflow.Ref(textID)))
	assert.Zero(t, calls.Load())

	assert.False(t, rule.Accepts(typeflow.Ref(textID), typeflow.Val(numberID)))
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewRule_NilOracle(t *testing.T) {
	rule := NewRule(nil)
	assert.True(t, rule.Accepts(typeflow.Val(numberID), typeflow.Val(numberID)))
	assert.False(t, rule.Accepts(typeflow.Val(intID), typeflow.Val(numberID)))
}

func TestAny(t *testing.T) {
	o := Any(
		nil,
		NewTable(Conversion{From: intID, To: numberID}),
		NewTable(Conversion{From: textID, To: objectID}),
	)

	assert.True(t, o.ImplicitlyConvertible(intID, numberID))
	assert.True(t, o.ImplicitlyConvertible(textID, objectID))
	assert.False(t, o.ImplicitlyConvertible(numberID, intID))
	assert.False(t, Any().ImplicitlyConvertible(intID, numberID))
}

func TestMemoize_SameAnswers(t *testing.T) {
	var calls atomic.Int32

	inner := OracleFunc(func(from, to typeflow.TypeID) bool {
		calls.Add(1)
		return from == intID && to == numberID
	})
	memo := Memoize(inner)

	ids := []typeflow.TypeID{textID, numberID, intID, objectID}

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for _, from := range ids {
				for _, to := range ids {
					assert.Equal(t, inner(from, to), memo.ImplicitlyConvertible(from, to))
				}
			}
		}()
	}

	wg.Wait()

	before := calls.Load()
	for _, from := range ids {
		for _, to := range ids {
			memo.ImplicitlyConvertible(from, to)
		}
	}

	assert.Equal(t, before, calls.Load(), "warm cache must not reach the inner oracle")
}
