// Command audseed records noise from a sound card, or decodes an audio
// file, and turns it into tested random seed material.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/audseed"
	"github.com/ik5/audseed/capture/alsa"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	fs := flag.NewFlagSet("audseed", flag.ContinueOnError)

	var (
		configPath = fs.String("config", "", "YAML configuration file")
		inputPath  = fs.String("input", "", "decode an audio file instead of recording")
		device     = fs.String("device", audseed.DefaultDevice, "ALSA capture device")
		duration   = fs.Duration("duration", audseed.DefaultDuration, "recording duration")
		rate       = fs.Int("rate", audseed.DefaultSampleRate, "capture sample rate in Hz")
		lsb        = fs.Int("lsb", audseed.DefaultNumLSB, "low bits kept per sample difference (1..8)")
		length     = fs.Int("length", audseed.DefaultLength, "number of random bytes to produce")
		peak       = fs.Float64("peak", float64(audseed.DefaultTargetPeak), "normalization target peak")
		savePath   = fs.String("save", "", "save the raw recording as WAV to this path")
	)

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := audseed.DefaultConfig()

	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			slog.Error("loading config", "path", *configPath, "err", err)
			return 1
		}
	}

	// Flags given on the command line win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "device":
			cfg.Device = *device
		case "duration":
			cfg.Duration = *duration
		case "rate":
			cfg.SampleRate = *rate
		case "lsb":
			cfg.NumLSB = *lsb
		case "length":
			cfg.Length = *length
		case "peak":
			cfg.TargetPeak = float32(*peak)
		case "save":
			cfg.SavePath = *savePath
		}
	})

	if err := cfg.Validate(); err != nil {
		slog.Error("configuration", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		rep audseed.Report
		err error
	)

	if *inputPath != "" {
		slog.Info("decoding", "path", *inputPath)

		rep, err = audseed.GenerateFromFile(audseed.DefaultRegistry(), *inputPath, cfg)
	} else {
		slog.Info("recording", "device", cfg.Device, "rate", cfg.SampleRate, "duration", cfg.Duration)

		rep, err = audseed.Capture(ctx, alsa.NewDevice(cfg.Device, cfg.SampleRate), cfg)
	}

	if err != nil {
		slog.Error("generating seed", "err", err)
		return 1
	}

	fmt.Fprintf(out, "Random data (hex): %s\n", rep.HexString())
	fmt.Fprintf(out, "Monobit test: p=%.4f pass=%v\n", rep.Monobit.P, rep.Monobit.OK)
	fmt.Fprintf(out, "Runs test: p=%.4f pass=%v\n", rep.Runs.P, rep.Runs.OK)

	if !rep.OK() {
		slog.Warn("statistical tests flagged the seed, consider recording again")
	}

	return 0
}
