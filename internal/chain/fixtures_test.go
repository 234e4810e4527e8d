package chain

import (
	"chainflow/internal/match"
	"chainflow/internal/typeflow"
)

var (
	textID   = typeflow.Named("Text")
	numberID = typeflow.Named("Number")
	intID    = typeflow.Named("Int")

	nonNullText  = typeflow.Ref(textID)
	nullableText = typeflow.NullableRef(textID)
	number       = typeflow.Val(numberID)
)

func check(id string, input typeflow.TypeDescriptor) typeflow.StepSpec {
	return typeflow.StepSpec{
		ID:         typeflow.StepID(id),
		Signatures: []typeflow.Signature{{Input: input, Output: input}},
	}
}

func transform(id string, input, output typeflow.TypeDescriptor) typeflow.StepSpec {
	return typeflow.StepSpec{
		ID:         typeflow.StepID(id),
		Signatures: []typeflow.Signature{{Input: input, Output: output, Transforms: true}},
	}
}

func marker(id string, kind typeflow.MarkerKind) typeflow.StepSpec {
	return typeflow.StepSpec{ID: typeflow.StepID(id), Marker: kind}
}

func testResolver() *Resolver {
	return NewResolver(match.NewTable(match.Conversion{From: intID, To: numberID}))
}
