package train

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/born-ml/linreg/internal/autodiff"
	"github.com/born-ml/linreg/internal/chart"
	"github.com/born-ml/linreg/internal/model"
	"github.com/born-ml/linreg/internal/nn"
	"github.com/born-ml/linreg/internal/optim"
	"github.com/born-ml/linreg/internal/tensor"
)

// Trainer fits a model.Regression to a fixed batch of inputs and targets.
//
// B is the numeric backend wrapped by the autodiff decorator.
type Trainer[B tensor.Backend] struct {
	cfg       Config
	backend   *autodiff.AutodiffBackend[B]
	model     *model.Regression[*autodiff.AutodiffBackend[B]]
	loss      *nn.MSELoss[*autodiff.AutodiffBackend[B]]
	optimizer *optim.Adam[*autodiff.AutodiffBackend[B]]
	x, y      *tensor.Tensor[float32, *autodiff.AutodiffBackend[B]]

	state   State
	epoch   int
	history []float32

	reporter *Reporter
	logger   *slog.Logger
}

// Option configures a Trainer.
type Option func(*options)

type options struct {
	reporter *Reporter
	logger   *slog.Logger
}

// WithReporter writes epoch progress and the final chart through r.
func WithReporter(r *Reporter) Option {
	return func(o *options) { o.reporter = r }
}

// WithLogger sends diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates a trainer for inputs x and targets y, both on backend.
//
// Zero-valued config fields take their DefaultConfig values.
func New[B tensor.Backend](
	cfg Config,
	backend *autodiff.AutodiffBackend[B],
	x, y *tensor.Tensor[float32, *autodiff.AutodiffBackend[B]],
	opts ...Option,
) (*Trainer[B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	m := model.NewRegression(backend)
	return &Trainer[B]{
		cfg:       cfg,
		backend:   backend,
		model:     m,
		loss:      nn.NewMSELoss(backend),
		optimizer: optim.NewAdam(m.Parameters(), optim.AdamConfig{LR: cfg.LearningRate}, backend),
		x:         x,
		y:         y,
		history:   make([]float32, 0, cfg.Epochs),
		reporter:  o.reporter,
		logger:    o.logger,
	}, nil
}

// Model returns the model being trained.
func (t *Trainer[B]) Model() *model.Regression[*autodiff.AutodiffBackend[B]] {
	return t.model
}

// State returns the current lifecycle state.
func (t *Trainer[B]) State() State {
	return t.state
}

// Epoch returns the number of completed epochs.
func (t *Trainer[B]) Epoch() int {
	return t.epoch
}

// History returns the loss of every completed epoch, oldest first.
func (t *Trainer[B]) History() []float32 {
	return append([]float32(nil), t.history...)
}

// Step runs one epoch and returns its loss, measured before the update.
//
// A *tensor.ShapeError raised by the numeric layer is returned as an error.
func (t *Trainer[B]) Step() (loss float32, err error) {
	if t.state == StateEvaluated || t.epoch >= t.cfg.Epochs {
		t.state = StateEvaluated
		return 0, ErrTrainingComplete
	}
	t.state = StateTraining

	tape := t.backend.Tape()
	defer func() {
		if r := recover(); r != nil {
			tape.StopRecording()
			tape.Clear()
			if shapeErr := asShapeError(r); shapeErr != nil {
				err = fmt.Errorf("train: epoch %d: %w", t.epoch, shapeErr)
				return
			}
			panic(r)
		}
	}()

	tape.StartRecording()
	pred := t.model.Forward(t.x)
	lossTensor := t.loss.Forward(pred, t.y)
	tape.StopRecording()

	t.optimizer.ZeroGrad()
	grads := autodiff.Backward(lossTensor, t.backend)
	t.optimizer.Step(grads)
	tape.Clear()

	loss = lossTensor.Item()
	epoch := t.epoch
	t.history = append(t.history, loss)
	t.epoch++
	if t.epoch == t.cfg.Epochs {
		t.state = StateEvaluated
	}

	if t.cfg.LogEvery > 0 && epoch%t.cfg.LogEvery == 0 && t.reporter != nil {
		if werr := t.reporter.Epoch(epoch, loss); werr != nil {
			return loss, fmt.Errorf("train: report epoch %d: %w", epoch, werr)
		}
	}
	return loss, nil
}

// Result summarizes a finished run.
type Result struct {
	Weight      float32       // Learned slope
	Bias        float32       // Learned intercept
	FinalLoss   float32       // Loss of the last epoch
	Predictions []chart.Point // (x, prediction) for every input
	Reference   Fit           // Closed-form least-squares line of the data
}

// Run executes all remaining epochs, then evaluates the model on the
// training inputs and reports the prediction chart.
func (t *Trainer[B]) Run() (*Result, error) {
	t.logger.Info("training started",
		"epochs", t.cfg.Epochs,
		float32Attr("learning_rate", t.cfg.LearningRate),
		"samples", t.x.Shape()[0],
		"backend", t.backend.Name(),
	)

	for {
		if _, err := t.Step(); err != nil {
			if errors.Is(err, ErrTrainingComplete) {
				break
			}
			return nil, err
		}
	}

	return t.Evaluate()
}

// Evaluate computes predictions for the training inputs with the current
// parameters, reports them, and compares the model with the closed-form fit.
func (t *Trainer[B]) Evaluate() (*Result, error) {
	xs := t.x.Data()
	preds, err := t.model.Predict(xs)
	if err != nil {
		return nil, fmt.Errorf("train: evaluate: %w", err)
	}

	points := make([]chart.Point, len(xs))
	for i := range xs {
		points[i] = chart.Point{X: float64(xs[i]), Y: float64(preds[i])}
	}

	res := &Result{
		Weight:      t.model.Weight(),
		Bias:        t.model.Bias(),
		Predictions: points,
		Reference:   ReferenceFit(xs, t.y.Data()),
	}
	if n := len(t.history); n > 0 {
		res.FinalLoss = t.history[n-1]
	}

	t.logger.Info("training finished",
		"epochs", t.epoch,
		float32Attr("final_loss", res.FinalLoss),
		float32Attr("weight", res.Weight),
		float32Attr("bias", res.Bias),
		"model", t.model.String(),
	)
	t.logger.Info("reference fit",
		"slope", res.Reference.Slope,
		"intercept", res.Reference.Intercept,
		"r_squared", res.Reference.RSquared,
	)

	if t.reporter != nil {
		if err := t.reporter.Predictions(points); err != nil {
			return res, fmt.Errorf("train: report predictions: %w", err)
		}
	}
	return res, nil
}

// float32Attr logs v with the shortest decimal that round-trips it as a
// float32, instead of its widened float64 expansion.
func float32Attr(key string, v float32) slog.Attr {
	return slog.String(key, strconv.FormatFloat(float64(v), 'g', -1, 32))
}

// asShapeError extracts a *tensor.ShapeError from a recovered panic value.
func asShapeError(r any) *tensor.ShapeError {
	err, ok := r.(error)
	if !ok {
		return nil
	}
	var shapeErr *tensor.ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr
	}
	return nil
}
