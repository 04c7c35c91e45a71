//go:build ef80debug

package ef80escape

const debugChecks = true
