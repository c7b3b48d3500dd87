// Package lite runs stages over a stream of independent outcomes with a
// fixed number of workers (lines).
//
// Common usage:
// - Run/Turnout: execute a stage over an input channel with N lines
// - Then/Try/Map/Validate/Tap/Recover: lift async combinators into stages
// - Finally: fold every outcome of a stream into a plain value
//
// Items are independent chains: with more than one line their output order is
// not the input order. Steps of one item always run in sequence.
package lite
