// Package engine runs the chain resolver over many members.
//
// Members are resolved on a bounded worker pool. Results are stored by member
// index, so the report and its diagnostics come out in input order no matter
// how the work was scheduled. A panic while resolving one member is recovered
// and reported as an internal tool error for that member only.
package engine
