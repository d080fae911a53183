// SPDX-License-Identifier: EPL-2.0

package audseed

import "encoding/hex"

// TestResult holds the outcome of a single statistical test.
type TestResult struct {
	// P is the test's p-value.
	P float64

	// OK is true when P falls inside the test's acceptance range.
	OK bool
}

// Report is the result of a seed generation run: the extracted bytes plus
// the statistical checks run on them.
type Report struct {
	// Seed is the extracted random bytes.
	Seed []byte

	// Monobit is the frequency test result.
	Monobit TestResult

	// Runs is the runs test result.
	Runs TestResult
}

// HexString returns the seed bytes as a lowercase hex string.
func (r Report) HexString() string {
	return hex.EncodeToString(r.Seed)
}

// OK reports whether both statistical tests passed.
func (r Report) OK() bool {
	return r.Monobit.OK && r.Runs.OK
}
