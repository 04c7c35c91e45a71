//go:build !ef80debug

package ef80escape

// debugChecks gates internal invariant re-validation. Enable with
// -tags ef80debug.
const debugChecks = false
