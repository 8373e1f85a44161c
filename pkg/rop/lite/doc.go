// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent batch validation. Each item flowing through a
// pipeline is validated by the synchronous algebra; lite only spreads the
// items over a fixed number of worker lines.
//
// Common usage:
// - Run: execute a stage over an input channel with a fixed number of lines
// - Validate/Bind/Map/Try: lift solo operations into stages
// - Turnout: compose stages that change the value type
// - Finally: map Result[In] to Out on completion
//
// With more than one line, output order is not guaranteed.
package lite
