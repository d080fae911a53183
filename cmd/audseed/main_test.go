package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/audseed/formats/wav"
	"github.com/ik5/audseed/internal/sigtest"
)

// writeNoiseWAV writes a deterministic noise recording and returns its path.
func writeNoiseWAV(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "noise.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	if err := wav.WriteWAV16(f, 44100, sigtest.Noise(1, 4097)); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return path
}

func TestRun_FromFile(t *testing.T) {
	t.Parallel()

	path := writeNoiseWAV(t)

	var out bytes.Buffer

	if code := run([]string{"-input", path}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	want := "Random data (hex): ab6440ec3a55c5afb4a7a0d2f60ea6706233504f1cded7a051b0da909ccd147c\n" +
		"Monobit test: p=0.4805 pass=true\n" +
		"Runs test: p=7.9375 pass=false\n"
	if out.String() != want {
		t.Errorf("run() output = %q, want %q", out.String(), want)
	}
}

func TestRun_LengthFlag(t *testing.T) {
	t.Parallel()

	path := writeNoiseWAV(t)

	var out bytes.Buffer

	if code := run([]string{"-input", path, "-length", "16"}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	want := "Random data (hex): ab403ac5b4a0f6a662501cd751da9c14\n" +
		"Monobit test: p=0.4531 pass=true\n" +
		"Runs test: p=5.5685 pass=false\n"
	if out.String() != want {
		t.Errorf("run() output = %q, want %q", out.String(), want)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	path := writeNoiseWAV(t)

	cfgPath := filepath.Join(t.TempDir(), "audseed.yaml")
	if err := os.WriteFile(cfgPath, []byte("length: 16\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer

	if code := run([]string{"-config", cfgPath, "-input", path}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	wantFirst := "Random data (hex): ab403ac5b4a0f6a662501cd751da9c14\n"
	if !bytes.HasPrefix(out.Bytes(), []byte(wantFirst)) {
		t.Errorf("run() output = %q, want prefix %q", out.String(), wantFirst)
	}
}

func TestRun_FlagBeatsConfig(t *testing.T) {
	t.Parallel()

	path := writeNoiseWAV(t)

	cfgPath := filepath.Join(t.TempDir(), "audseed.yaml")
	if err := os.WriteFile(cfgPath, []byte("length: 64\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer

	if code := run([]string{"-config", cfgPath, "-input", path, "-length", "16"}, &out); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	wantFirst := "Random data (hex): ab403ac5b4a0f6a662501cd751da9c14\n"
	if !bytes.HasPrefix(out.Bytes(), []byte(wantFirst)) {
		t.Errorf("run() output = %q, want prefix %q", out.String(), wantFirst)
	}
}

func TestRun_InvalidConfigValue(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	if code := run([]string{"-lsb", "0"}, &out); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}

	if out.Len() != 0 {
		t.Errorf("run() wrote %q, want no output on failure", out.String())
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	if code := run([]string{"-bogus"}, &out); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}

func TestRun_MissingInputFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := filepath.Join(t.TempDir(), "gone.wav")
	if code := run([]string{"-input", path}, &out); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}

func TestRun_MissingConfigFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	path := filepath.Join(t.TempDir(), "gone.yaml")
	if code := run([]string{"-config", path}, &out); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
}
