// Package plan turns chain resolutions into concrete chain rewrites.
//
// A reorderable chain is rewritten to the suggested order; a chain that
// needs a not-null fix gets the strip marker inserted right before the
// failing step. Incompatible chains have no automatic fix.
//
// Rewrites are exported back into a manifest so that they can be reviewed
// and committed like any other manifest change.
package plan
