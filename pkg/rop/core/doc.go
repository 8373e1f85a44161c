// Package core contains pipeline plumbing utilities: channel helpers, worker
// and logger configuration via context, and the locomotive that drives stages.
// It does not define validation logic; instead it provides the scaffolding for
// package lite to run many independent validations with controlled concurrency.
package core
