package main

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/linreg/internal/dataset"
	"github.com/born-ml/linreg/internal/train"
)

func TestRun_Output(t *testing.T) {
	dcfg := dataset.DefaultConfig()
	dcfg.Seed = 2024

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	require.NoError(t, run(dcfg, train.DefaultConfig(), &out, logger))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// 10 epoch lines, blank line, header, 43 chart lines
	require.Len(t, lines, 55)
	for i := range 10 {
		assert.True(t, strings.HasPrefix(lines[i], "Epoch "), lines[i])
		assert.Contains(t, lines[i], ": Loss = ")
	}
	assert.True(t, strings.HasPrefix(lines[0], "Epoch 0: Loss = "))
	assert.True(t, strings.HasPrefix(lines[9], "Epoch 900: Loss = "))
	assert.Equal(t, "", lines[10])
	assert.Equal(t, "Final Model Predictions:", lines[11])

	assert.Contains(t, logs.String(), "seed=2024")
	assert.Contains(t, logs.String(), "fingerprint=")
	assert.Contains(t, logs.String(), "logical_cores=")
	assert.NotContains(t, out.String(), "level=")
}

func TestRun_SameSeedSameOutput(t *testing.T) {
	dcfg := dataset.DefaultConfig()
	dcfg.Seed = 31
	tcfg := train.Config{Epochs: 300}
	logger := slog.New(slog.DiscardHandler)

	var a, b bytes.Buffer
	require.NoError(t, run(dcfg, tcfg, &a, logger))
	require.NoError(t, run(dcfg, tcfg, &b, logger))
	assert.Equal(t, a.String(), b.String())
}

func TestRun_InvalidDataset(t *testing.T) {
	dcfg := dataset.DefaultConfig()
	dcfg.Samples = 0

	err := run(dcfg, train.DefaultConfig(), &bytes.Buffer{}, slog.New(slog.DiscardHandler))
	assert.True(t, errors.Is(err, dataset.ErrInvalidConfig))
}
