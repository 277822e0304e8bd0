// Package neurograph is the embeddable core: a small neuron/connection graph
// with a single-pass forward evaluation, a cosmetic animation and an orbital
// layout. A Network is not safe for concurrent use; hosts that share one
// across goroutines must serialize access themselves.
package neurograph

import (
	"io"
	"log/slog"
	"time"

	"neurograph/internal/animation"
	"neurograph/internal/graph"
	"neurograph/internal/logging"
	"neurograph/internal/metrics"
	"neurograph/internal/model"
	"neurograph/internal/nn"
	"neurograph/internal/snapshot"
	"neurograph/internal/visualization"
)

type Network struct {
	store   *graph.Store
	stepper *animation.Stepper
	logger  *slog.Logger
	metrics *metrics.Collector
	now     func() time.Time
	rng     graph.RandSource
	hasRand bool
	seed    int64
}

type Option func(*Network)

// WithRand injects the source used for bias and weight draws.
func WithRand(rng graph.RandSource) Option {
	return func(n *Network) {
		n.rng = rng
		n.hasRand = rng != nil
	}
}

// WithSeed draws biases and weights from a math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(n *Network) {
		n.seed = seed
		n.hasRand = false
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Network) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func WithMetrics(c *metrics.Collector) Option {
	return func(n *Network) { n.metrics = c }
}

// WithClock replaces time.Now for dump timestamps.
func WithClock(now func() time.Time) Option {
	return func(n *Network) {
		if now != nil {
			n.now = now
		}
	}
}

func New(opts ...Option) *Network {
	n := &Network{
		stepper: animation.NewStepper(),
		logger:  logging.NewNop(),
		now:     time.Now,
		seed:    time.Now().UnixNano(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if !n.hasRand {
		n.rng = graph.NewSeededRand(n.seed)
	}
	n.store = graph.New(n.rng)
	n.logger.Debug("network initialized")
	return n
}

// AddNeuron adds a neuron tagged typ ("input", "hidden", "output" or any
// other string for an unknown neuron) and returns its id.
func (n *Network) AddNeuron(x, y float64, typ string) int {
	t := model.ParseNeuronType(typ)
	id := n.store.AddNeuron(x, y, t)
	n.metrics.Op("add_neuron")
	n.logger.Debug("added neuron", "id", id, "type", t, "x", x, "y", y)
	return id
}

// AddConnection links two existing neurons. It reports false when either
// neuron does not exist.
func (n *Network) AddConnection(from, to int) (int, bool) {
	id, ok := n.store.AddConnection(from, to)
	if !ok {
		n.metrics.Refused()
		n.logger.Warn("cannot connect: neuron missing", "from", from, "to", to)
		return 0, false
	}
	c, _ := n.store.Connection(id)
	n.metrics.Op("add_connection")
	n.logger.Debug("connected neurons", "id", id, "from", from, "to", to, "weight", c.Weight)
	return id, true
}

// Clear empties the network and restarts id allocation at 1. The animation
// clock is left untouched.
func (n *Network) Clear() {
	n.store.Clear()
	n.metrics.Op("clear")
	n.logger.Debug("network cleared")
}

// BuildSample replaces the network with the 2-3-1 demonstration topology.
func (n *Network) BuildSample() {
	graph.BuildSample(n.store)
	n.metrics.Op("sample")
	n.logger.Debug("created sample network", "architecture", "2-3-1")
}

// Step advances the animation clock. It overwrites any activation left by
// Predict.
func (n *Network) Step(dt float64) {
	n.stepper.Step(n.store, dt)
	n.metrics.Op("step")
	n.metrics.Clock(n.stepper.Clock())
}

// Orbit lays the neurons out on a circle for the given time in milliseconds.
func (n *Network) Orbit(ms float64) {
	animation.Orbit(n.store, ms)
	n.metrics.Op("orbit")
	n.logger.Debug("orbital layout", "time", ms)
}

// Predict runs one forward sweep. See nn.Predict for ordering rules.
func (n *Network) Predict(inputs []float64) []float64 {
	n.logger.Debug("starting prediction", "inputs", len(inputs))
	outputs := nn.Predict(n.store, inputs)
	n.metrics.Op("predict")
	n.logger.Debug("prediction complete", "outputs", len(outputs))
	return outputs
}

// Snapshot returns a detached copy of the network with aggregate stats.
func (n *Network) Snapshot() model.Snapshot {
	snap := snapshot.Export(n.store)
	n.metrics.Observe(snap.Stats)
	return snap
}

func (n *Network) AnimationTime() float64 { return n.stepper.Clock() }

// Store exposes the underlying graph for adapters and fixtures.
func (n *Network) Store() *graph.Store { return n.store }

// Dump writes the console listing of the network to w.
func (n *Network) Dump(w io.Writer) error {
	return visualization.Dump(w, n.dumpState())
}

func (n *Network) DumpString() string {
	return visualization.DumpString(n.dumpState())
}

func (n *Network) DOT() string {
	return visualization.RenderDOT(n.Snapshot())
}

func (n *Network) dumpState() visualization.DumpState {
	return visualization.DumpState{
		Snapshot:         n.Snapshot(),
		NextNeuronID:     n.store.NextNeuronID(),
		NextConnectionID: n.store.NextConnectionID(),
		AnimationTime:    n.stepper.Clock(),
		GeneratedAt:      n.now(),
	}
}
