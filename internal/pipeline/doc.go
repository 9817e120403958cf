// Package pipeline runs a report job: load the roster, generate the three
// reports and write them to the output directory.
//
// Each stage is a Step that receives the shared Audit and fills in its part.
// The generate step runs the three report generators concurrently with
// errgroup; they share only the read-only roster. The write step runs last,
// so a failure anywhere leaves the output directory untouched.
package pipeline
