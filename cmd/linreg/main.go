// Package main is the linreg command: it fits a line to synthetic noisy data
// with gradient descent and plots the learned model.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/linreg/internal/autodiff"
	"github.com/born-ml/linreg/internal/backend/cpu"
	"github.com/born-ml/linreg/internal/dataset"
	"github.com/born-ml/linreg/internal/train"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("linreg %s\n", version)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(dataset.DefaultConfig(), train.DefaultConfig(), os.Stdout, logger); err != nil {
		logger.Error("linreg failed", "error", err)
		os.Exit(1)
	}
}

// run generates the dataset, trains the model and writes the report to out.
func run(dcfg dataset.Config, tcfg train.Config, out io.Writer, logger *slog.Logger) error {
	rng, seed := dataset.NewRand(dcfg.Seed)
	data, err := dataset.Generate(dcfg, rng)
	if err != nil {
		return fmt.Errorf("generate dataset: %w", err)
	}

	cpuBackend := cpu.New()
	host := cpuBackend.Host()
	backend := autodiff.New(cpuBackend)

	logger.Info("dataset generated",
		"seed", seed,
		"samples", data.Len(),
		"fingerprint", fmt.Sprintf("%016x", data.Fingerprint()),
	)
	logger.Info("backend ready",
		"backend", backend.Name(),
		"cpu", host.Brand,
		"logical_cores", host.LogicalCores,
		"workers", cpuBackend.Parallelism().Workers,
		"simd", host.SIMD,
	)

	x, y, err := dataset.Tensors(data, backend)
	if err != nil {
		return err
	}

	trainer, err := train.New(tcfg, backend, x, y,
		train.WithReporter(train.NewReporter(out)),
		train.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create trainer: %w", err)
	}

	if _, err := trainer.Run(); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	return nil
}
