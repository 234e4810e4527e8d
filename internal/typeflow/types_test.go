package typeflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var email = TypeID{PkgPath: "chainflow/store", Name: "Email"}

func TestTypeDescriptor_String(t *testing.T) {
	tests := []struct {
		in        TypeDescriptor
		wantLong  string
		wantShort string
	}{
		{Ref(Named("string")), "string", "string"},
		{NullableRef(Named("string")), "string?", "string?"},
		{Val(email), "chainflow/store.Email", "store.Email"},
		{OptionalOf(email), "chainflow/store.Email?", "store.Email?"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLong, func(t *testing.T) {
			assert.Equal(t, tt.wantLong, tt.in.String())
			assert.Equal(t, tt.wantShort, tt.in.Short())
		})
	}
}

func TestTypeDescriptor_Nullability(t *testing.T) {
	opt := OptionalOf(email)
	assert.True(t, opt.Nullable)
	assert.Equal(t, Val(email), opt.Underlying())
	assert.Equal(t, Val(email), opt.NonNull())

	ref := NullableRef(email)
	assert.Equal(t, ref, ref.Underlying(), "only wrapped optionals unwrap")
	assert.Equal(t, Ref(email), ref.NonNull())

	// Kind does not take part in identity.
	assert.True(t, Ref(email).Identical(Val(email)))
	assert.False(t, Val(email).Identical(opt))
}

func TestParseKindAndMarker(t *testing.T) {
	k, ok := ParseKind("val")
	assert.True(t, ok)
	assert.Equal(t, KindValue, k)

	_, ok = ParseKind("pointer")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(9).String())

	m, ok := ParseMarkerKind("")
	assert.True(t, ok)
	assert.Equal(t, MarkerNone, m)

	m, ok = ParseMarkerKind("passthrough")
	assert.True(t, ok)
	assert.Equal(t, "passthrough", m.String())

	_, ok = ParseMarkerKind("unwrap")
	assert.False(t, ok)
}

func TestStepSpec_Apply(t *testing.T) {
	opt := OptionalOf(email)

	assert.Equal(t, Val(email), StepSpec{Marker: MarkerStrip}.Apply(opt))
	assert.Equal(t, opt, StepSpec{Marker: MarkerPassthrough}.Apply(opt))

	check := Signature{Input: Val(email), Output: Ref(Named("string"))}
	assert.Equal(t, Val(email), check.Resolve(Val(email)), "check steps pass the value through")

	check.Transforms = true
	assert.Equal(t, Ref(Named("string")), check.Resolve(Val(email)))
}

func TestMember_Ordered(t *testing.T) {
	m := Member{Chains: []Chain{{GroupKey: "b"}, {GroupKey: ""}, {GroupKey: "a"}}}

	var keys []string
	for _, c := range m.Ordered() {
		keys = append(keys, c.GroupKey)
	}

	assert.Equal(t, []string{"", "a", "b"}, keys)
	assert.Equal(t, "b", m.Chains[0].GroupKey, "receiver is not modified")
}
