// Package analyze loads Go packages and turns tagged struct fields into chain
// members.
//
// It uses golang.org/x/tools/go/packages with go/types to build an in-memory
// model of the loaded structs, describes Go types as typeflow descriptors and
// answers implicit-conversion questions with go/types assignability.
//
// Key types:
//   - TypeGraph: named types and struct fields of the loaded packages
//   - Oracle: match.Oracle backed by types.AssignableTo
//
// A field opts in with a steps tag. The segment without "=" is the default
// chain, every other segment names a group:
//
//	Nickname *string `steps:"NotNull,Trim;strict=NotNull,NotEmpty"`
package analyze
