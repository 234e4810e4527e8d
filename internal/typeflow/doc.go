// Package typeflow defines the immutable data model shared by the chain
// resolver and its collaborators.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeDescriptor: a type identity plus its nullability annotation
//   - Signature: one accepted (input, output) pair of a step
//   - StepSpec: a declared validation step, or a nullability marker
//   - Chain / Member: the ordered steps attached to a data-model member
//   - ResolvedStep: one step of a successfully threaded chain
package typeflow
