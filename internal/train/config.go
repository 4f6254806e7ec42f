// Package train runs the regression training loop and reports its progress.
//
// A Trainer moves through three states:
//
//	Initialized -> Training -> Evaluated
//
// Each Step performs one epoch: forward pass, MSE loss, reverse-mode
// gradients and an Adam update. After the configured number of epochs the
// trainer is Evaluated and further steps fail with ErrTrainingComplete.
package train

import (
	"errors"
	"fmt"
)

// ErrTrainingComplete is returned by Step once every epoch has run.
var ErrTrainingComplete = errors.New("train: training complete")

// Config holds the training hyperparameters.
type Config struct {
	Epochs       int     // Number of full-batch updates (default: 1000)
	LearningRate float32 // Adam learning rate (default: 0.01)
	LogEvery     int     // Report the loss every LogEvery epochs (default: 100)
}

// DefaultConfig returns the demo configuration.
func DefaultConfig() Config {
	return Config{
		Epochs:       1000,
		LearningRate: 0.01,
		LogEvery:     100,
	}
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Epochs == 0 {
		c.Epochs = def.Epochs
	}
	if c.LearningRate == 0 {
		c.LearningRate = def.LearningRate
	}
	if c.LogEvery == 0 {
		c.LogEvery = def.LogEvery
	}
	return c
}

// Validate reports whether the configuration can be trained with.
func (c Config) Validate() error {
	if c.Epochs < 0 {
		return fmt.Errorf("train: epochs must be non-negative, got %d", c.Epochs)
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("train: learning rate must be non-negative, got %v", c.LearningRate)
	}
	if c.LogEvery < 0 {
		return fmt.Errorf("train: log interval must be non-negative, got %d", c.LogEvery)
	}
	return nil
}

// State is the lifecycle stage of a Trainer.
type State int

// Trainer states.
const (
	StateInitialized State = iota
	StateTraining
	StateEvaluated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateTraining:
		return "training"
	case StateEvaluated:
		return "evaluated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
