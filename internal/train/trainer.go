// Package train drives gradient-descent training of a small scalar
// classifier over the 2D point datasets.
//
// Each epoch builds the full forward expression for every point on the
// shared graph, runs one backward pass over the summed loss, applies an SGD
// step, and then truncates the graph back to the parameter watermark so the
// arena does not grow across epochs.
package train

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/dataset"
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
)

// Result summarizes the state at the end of an epoch.
type Result struct {
	Epoch   int
	Loss    float64
	Correct int
	Total   int
}

// Trainer owns the graph, model, dataset and optimizer for one training run.
type Trainer struct {
	cfg    Config
	logger *slog.Logger
	graph  *autodiff.Graph
	model  *nn.Sequential
	opt    optim.Optimizer
	data   *dataset.Dataset
}

// New builds a trainer from the given configuration. The model is a
// 2 → hidden → hidden → 1 network with ReLU hidden layers and a sigmoid
// output. If logger is nil, slog.Default() is used.
func New(cfg Config, logger *slog.Logger) (*Trainer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	data, err := dataset.ByName(cfg.Dataset, cfg.Points, rng)
	if err != nil {
		return nil, err
	}

	g := autodiff.NewGraph()
	model := nn.NewSequential(
		nn.NewLinear(g, 2, cfg.Hidden, rng),
		nn.NewReLU(),
		nn.NewLinear(g, cfg.Hidden, cfg.Hidden, rng),
		nn.NewReLU(),
		nn.NewLinear(g, cfg.Hidden, 1, rng),
		nn.NewSigmoid(),
	)
	opt := optim.NewSGD(model.Parameters(), optim.SGDConfig{
		LR:       cfg.LearningRate,
		Momentum: cfg.Momentum,
	})

	return &Trainer{
		cfg:    cfg,
		logger: logger,
		graph:  g,
		model:  model,
		opt:    opt,
		data:   data,
	}, nil
}

// Model returns the trainer's model, e.g. for inspecting parameters.
func (t *Trainer) Model() *nn.Sequential {
	return t.model
}

// Run trains for the configured number of epochs and returns the final
// epoch's result.
func (t *Trainer) Run() Result {
	var res Result
	for epoch := 1; epoch <= t.cfg.Epochs; epoch++ {
		res = t.epoch(epoch)
		if t.cfg.LogEvery > 0 && (epoch%t.cfg.LogEvery == 0 || epoch == t.cfg.Epochs) {
			t.logger.Info("epoch complete",
				slog.Int("epoch", res.Epoch),
				slog.Float64("loss", res.Loss),
				slog.Int("correct", res.Correct),
				slog.Int("total", res.Total),
			)
		}
	}
	return res
}

// Predict runs the current model on a single point and returns the class-1
// probability. The expression nodes are discarded afterwards.
func (t *Trainer) Predict(p dataset.Point) float64 {
	mark := t.graph.Mark()
	defer t.graph.Truncate(mark)

	out := t.forward(p)
	return out.Data()
}

func (t *Trainer) forward(p dataset.Point) autodiff.Value {
	inputs := []autodiff.Value{t.graph.Leaf(p.X1), t.graph.Leaf(p.X2)}
	outputs := t.model.Forward(inputs)
	if len(outputs) != 1 {
		panic(fmt.Sprintf("train: model produced %d outputs, want 1", len(outputs)))
	}
	return outputs[0]
}

// epoch runs one full-batch training step and reports loss and accuracy.
func (t *Trainer) epoch(n int) Result {
	mark := t.graph.Mark()
	defer t.graph.Truncate(mark)

	preds := make([]autodiff.Value, t.data.N)
	targets := make([]autodiff.Value, t.data.N)
	correct := 0
	for i, p := range t.data.X {
		preds[i] = t.forward(p)
		targets[i] = t.graph.Leaf(float64(t.data.Y[i]))

		predicted := 0
		if preds[i].Data() > 0.5 {
			predicted = 1
		}
		if predicted == t.data.Y[i] {
			correct++
		}
	}

	loss := nn.BCELoss(preds, targets)

	t.opt.ZeroGrad()
	t.graph.Backward(loss)
	t.opt.Step()

	return Result{Epoch: n, Loss: loss.Data(), Correct: correct, Total: t.data.N}
}
