// Package diagnostic provides structured errors, warnings and notes produced
// while checking validation chains.
//
// Key capabilities:
//   - Chain findings (reordering suggestions, missing not-null markers,
//     incompatible step types, internal tool errors)
//   - Manifest findings (unknown or duplicate names, malformed steps)
//   - "Did you mean" suggestions attached to a finding
package diagnostic
