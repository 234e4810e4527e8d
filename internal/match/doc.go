// Package match decides whether a flowing type satisfies a declared step
// input, and suggests close names for unknown identifiers.
//
// Key functions:
//   - Rule.Accepts: the strict, nullability-aware compatibility rule
//   - Oracle: injected capability answering implicit conversions between types
//   - Memoize / Any / NewTable: oracle building blocks
//   - Suggest: closest-name lookup for "did you mean" diagnostics
package match
