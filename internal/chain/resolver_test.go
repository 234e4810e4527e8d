package chain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "success", OutcomeSuccess.String())
	assert.Equal(t, "reorderable", OutcomeReorderable.String())
	assert.Equal(t, "needs_null_fix", OutcomeNeedsNullFix.String())
	assert.Equal(t, "incompatible", OutcomeIncompatible.String())
	assert.Equal(t, "internal_error", OutcomeInternalError.String())
	assert.Equal(t, "Outcome(9)", Outcome(9).String())
}

func TestResolve_EmptyChain(t *testing.T) {
	r := testResolver()

	for _, start := range []typeflow.TypeDescriptor{nonNullText, nullableText, number, typeflow.OptionalOf(numberID)} {
		res := r.Resolve(start, nil)
		assert.Equal(t, OutcomeSuccess, res.Kind)
		assert.NotNil(t, res.Steps)
		assert.Empty(t, res.Steps)
	}
}

func TestResolve_SingleCheckStep(t *testing.T) {
	res := testResolver().Resolve(nonNullText, []typeflow.StepSpec{check("NotEmpty", nonNullText)})

	require.Equal(t, OutcomeSuccess, res.Kind)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, nonNullText, res.Steps[0].Output)
	require.NotNil(t, res.Steps[0].Signature)
	assert.Equal(t, nonNullText, res.Steps[0].Signature.Input)
}

func TestResolve_NullableIntoNonNullNeedsFix(t *testing.T) {
	res := testResolver().Resolve(nullableText, []typeflow.StepSpec{check("NotEmpty", nonNullText)})

	require.Equal(t, OutcomeNeedsNullFix, res.Kind)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, typeflow.StepID("NotEmpty"), res.Step.ID)
}

func TestResolve_IncompatibleWhenNoOrderThreads(t *testing.T) {
	steps := []typeflow.StepSpec{
		check("Positive", number),
		check("NotEmpty", nonNullText),
	}

	res := testResolver().Resolve(nonNullText, steps)

	require.Equal(t, OutcomeIncompatible, res.Kind)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, nonNullText, res.Got)
	assert.Equal(t, []typeflow.TypeDescriptor{number}, res.Expected)
	assert.Equal(t, typeflow.StepID("Positive"), res.Step.ID)
}

func TestResolve_ReorderableSuggestsOrder(t *testing.T) {
	steps := []typeflow.StepSpec{
		check("Positive", number),
		transform("ParseNumber", nonNullText, number),
	}

	res := testResolver().Resolve(nonNullText, steps)

	require.Equal(t, OutcomeReorderable, res.Kind)
	assert.Equal(t, []typeflow.StepID{"ParseNumber", "Positive"}, res.SuggestedIDs())
	assert.Equal(t, typeflow.StepID("Positive"), steps[0].ID, "declared steps must not be reordered in place")
}

func TestResolve_StripMarkerUnwrapsOptional(t *testing.T) {
	steps := []typeflow.StepSpec{
		marker("NotNull", typeflow.MarkerStrip),
		check("Positive", number),
	}

	res := testResolver().Resolve(typeflow.OptionalOf(numberID), steps)

	require.Equal(t, OutcomeSuccess, res.Kind)
	require.Len(t, res.Steps, 2)
	assert.Nil(t, res.Steps[0].Signature)
	assert.Equal(t, number, res.Steps[0].Output)
	assert.Equal(t, number, res.Steps[1].Output)
}

func TestResolve_StripMarkerClearsNullableReference(t *testing.T) {
	steps := []typeflow.StepSpec{
		marker("NotNull", typeflow.MarkerStrip),
		check("NotEmpty", nonNullText),
	}

	res := testResolver().Resolve(nullableText, steps)

	require.Equal(t, OutcomeSuccess, res.Kind)
	assert.Equal(t, nonNullText, res.Steps[0].Output)
}

func TestResolve_WrappedOptionalNeedsFix(t *testing.T) {
	res := testResolver().Resolve(typeflow.OptionalOf(numberID), []typeflow.StepSpec{check("Positive", number)})

	require.Equal(t, OutcomeNeedsNullFix, res.Kind)
	assert.Equal(t, 0, res.Position)
}

func TestResolve_WrappedOptionalRequiresExactUnderlying(t *testing.T) {
	// Int widens to Number, but the optional repair only matches the exact
	// underlying type.
	res := testResolver().Resolve(typeflow.OptionalOf(intID), []typeflow.StepSpec{check("Positive", number)})

	require.Equal(t, OutcomeIncompatible, res.Kind)
	assert.Equal(t, typeflow.OptionalOf(intID), res.Got)
}

func TestResolve_PassthroughMarkerKeepsNullability(t *testing.T) {
	steps := []typeflow.StepSpec{
		marker("Optional", typeflow.MarkerPassthrough),
		check("NotEmpty", nonNullText),
	}

	res := testResolver().Resolve(nullableText, steps)

	require.Equal(t, OutcomeNeedsNullFix, res.Kind)
	assert.Equal(t, 1, res.Position)
}

func TestResolve_ReorderTakesPrecedenceOverNullFix(t *testing.T) {
	steps := []typeflow.StepSpec{
		check("NotEmpty", nonNullText),
		marker("NotNull", typeflow.MarkerStrip),
	}

	r := testResolver()
	_, failure := Walk(r.Rule(), nullableText, steps)
	require.NotNil(t, failure)
	require.True(t, CanFixWithNotNull(r.Rule(), failure.Got, failure.Step), "a null fix exists too")

	res := r.Resolve(nullableText, steps)

	require.Equal(t, OutcomeReorderable, res.Kind)
	assert.Equal(t, []typeflow.StepID{"NotNull", "NotEmpty"}, res.SuggestedIDs())
}

func TestResolve_SingleStepSkipsReordering(t *testing.T) {
	res := testResolver().Resolve(number, []typeflow.StepSpec{check("NotEmpty", nonNullText)})

	require.Equal(t, OutcomeIncompatible, res.Kind)
	assert.Equal(t, 0, res.Position)
	assert.Equal(t, number, res.Got)
}

func TestResolve_WideningThroughOracle(t *testing.T) {
	res := testResolver().Resolve(typeflow.Val(intID), []typeflow.StepSpec{check("Positive", number)})

	require.Equal(t, OutcomeSuccess, res.Kind)
	// A check step leaves the flowing type untouched.
	assert.Equal(t, typeflow.Val(intID), res.Steps[0].Output)
}

func TestResolve_FirstMatchingSignatureWins(t *testing.T) {
	step := typeflow.StepSpec{
		ID: "Length",
		Signatures: []typeflow.Signature{
			{Input: number, Output: number},
			{Input: nonNullText, Output: number, Transforms: true},
			{Input: nonNullText, Output: nonNullText},
		},
	}

	res := testResolver().Resolve(nonNullText, []typeflow.StepSpec{step})

	require.Equal(t, OutcomeSuccess, res.Kind)
	require.NotNil(t, res.Steps[0].Signature)
	assert.True(t, res.Steps[0].Signature.Transforms)
	assert.Equal(t, number, res.Steps[0].Output)
}

func TestResolve_Deterministic(t *testing.T) {
	r := testResolver()
	chains := [][]typeflow.StepSpec{
		{check("Positive", number), transform("ParseNumber", nonNullText, number)},
		{check("NotEmpty", nonNullText)},
		{check("Positive", number), check("NotEmpty", nonNullText)},
		{marker("NotNull", typeflow.MarkerStrip), check("NotEmpty", nonNullText)},
	}

	for _, start := range []typeflow.TypeDescriptor{nonNullText, nullableText, number} {
		for _, steps := range chains {
			first := r.Resolve(start, steps)
			second := r.Resolve(start, steps)

			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("Resolve(%s) not deterministic (-first +second):\n%s", start, diff)
			}
		}
	}
}

func TestResolveMember_GroupOrder(t *testing.T) {
	m := typeflow.Member{
		Name: "Email",
		Type: nonNullText,
		Chains: []typeflow.Chain{
			{GroupKey: "strict", Steps: []typeflow.StepSpec{check("Positive", number)}},
			{GroupKey: "", Steps: []typeflow.StepSpec{check("NotEmpty", nonNullText)}},
			{GroupKey: "audit", Steps: nil},
		},
	}

	got := testResolver().ResolveMember(m)

	require.Len(t, got, 3)
	assert.Equal(t, "", got[0].GroupKey)
	assert.Equal(t, OutcomeSuccess, got[0].Resolution.Kind)
	assert.Equal(t, "audit", got[1].GroupKey)
	assert.Equal(t, OutcomeSuccess, got[1].Resolution.Kind)
	assert.Equal(t, "strict", got[2].GroupKey)
	assert.Equal(t, OutcomeIncompatible, got[2].Resolution.Kind)
	assert.Equal(t, "strict", m.Chains[0].GroupKey, "member chains must not be reordered in place")
}

func TestMarkersNeverConsultCompatibility(t *testing.T) {
	oracle := match.OracleFunc(func(from, to typeflow.TypeID) bool {
		t.Fatalf("oracle consulted for %s -> %s", from, to)
		return false
	})
	rule := match.NewRule(oracle)

	// The signatures are unrelated to every start type and must be ignored.
	strip := typeflow.StepSpec{
		ID:         "NotNull",
		Marker:     typeflow.MarkerStrip,
		Signatures: []typeflow.Signature{{Input: typeflow.Val(typeflow.Named("Unrelated"))}},
	}
	pass := typeflow.StepSpec{
		ID:         "Optional",
		Marker:     typeflow.MarkerPassthrough,
		Signatures: []typeflow.Signature{{Input: typeflow.Val(typeflow.Named("Unrelated"))}},
	}

	starts := []typeflow.TypeDescriptor{
		nonNullText, nullableText, number, typeflow.OptionalOf(numberID), typeflow.Ref(typeflow.TypeID{PkgPath: "x/y", Name: "Z"}),
	}

	for _, start := range starts {
		resolved, failure := Walk(rule, start, []typeflow.StepSpec{pass, strip, pass})
		require.Nil(t, failure)
		require.Len(t, resolved, 3)
		assert.Equal(t, start, resolved[0].Output)
		assert.Equal(t, start.NonNull(), resolved[1].Output)
		assert.Equal(t, start.NonNull(), resolved[2].Output)
	}
}
