// SPDX-License-Identifier: EPL-2.0

// Package randtest provides bit-level sanity checks for extracted seed
// bytes.
//
// Two checks are available, both reading the buffer as a stream of bits
// with the most significant bit of each byte first:
//
//   - Monobit: the fraction of set bits, passing while strictly inside
//     (0.45, 0.55).
//   - Runs: a transition statistic compared against 1.96.
//
// Both return the raw statistic alongside the verdict so callers can log
// or threshold it themselves:
//
//	p, ok, err := randtest.Monobit(seed)
//
// These are quick screens for a stuck or heavily biased capture chain, not
// a substitute for a real randomness battery.
package randtest
