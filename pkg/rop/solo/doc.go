// Package solo contains the single-value, synchronous combinators over
// rop.Result[T]. They are the algebra every other package builds on.
//
// Highlights:
// - Map/Bind/BindWith: transform and sequence, stopping at the first failure
// - Apply/ZipWith/Zip/ZipLeft/ZipRight: combine independent results and
//   accumulate the messages of every failed operand, left to right
// - ZipWith3/Zip3: three-way accumulation built from nested pairwise zips
// - Lift2/Lift3/Lift4: turn a plain function into one over results
// - Validate/ValidateAll/ValidateFirst: build results from predicates
// - Sequence: collect a slice of results, accumulating every failure
// - Tee/Finally: side effects and reduction to a concrete value
//
// Combinators never recover panics raised by the functions passed to them;
// use rop.Try at the boundary where panics should become failures.
package solo
