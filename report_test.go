// SPDX-License-Identifier: EPL-2.0

package audseed

import "testing"

func TestReportHexString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed []byte
		want string
	}{
		{"mixed bytes", []byte{0x00, 0xff, 0x10, 0xab}, "00ff10ab"},
		{"single byte", []byte{0x0f}, "0f"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep := Report{Seed: tt.seed}
			if got := rep.HexString(); got != tt.want {
				t.Errorf("HexString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReportOK(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		monobit bool
		runs    bool
		want    bool
	}{
		{"both pass", true, true, true},
		{"monobit fails", false, true, false},
		{"runs fails", true, false, false},
		{"both fail", false, false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep := Report{
				Monobit: TestResult{OK: tt.monobit},
				Runs:    TestResult{OK: tt.runs},
			}

			if got := rep.OK(); got != tt.want {
				t.Errorf("OK() = %v, want %v", got, tt.want)
			}
		})
	}
}
