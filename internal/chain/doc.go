// Package chain decides whether the validation steps attached to a member
// thread into a legal type-flow pipeline.
//
// Resolution pipeline:
//  1. Walk the chain in declared order from the member's declared type
//  2. On failure, try a greedy reordering of the same steps (chains of two or more)
//  3. Otherwise check whether inserting a not-null marker would fix the failing step
//  4. Otherwise report the failing step as incompatible
//
// Every function here is pure over its inputs, so one Resolver may serve
// many goroutines as long as its conversion oracle is concurrency safe.
package chain
