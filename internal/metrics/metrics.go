// Package metrics exposes Prometheus collectors for network operations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"neurograph/internal/model"
)

// Collector groups the counters and gauges updated by a network.
// A nil *Collector is valid and records nothing.
type Collector struct {
	Operations         *prometheus.CounterVec
	RefusedConnections prometheus.Counter
	Neurons            *prometheus.GaugeVec
	Connections        prometheus.Gauge
	AverageActivation  prometheus.Gauge
	AnimationClock     prometheus.Gauge
}

func New() *Collector {
	return &Collector{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "neurograph_operations_total",
			Help: "Network operations by kind.",
		}, []string{"op"}),
		RefusedConnections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "neurograph_refused_connections_total",
			Help: "Connections refused because an endpoint was missing.",
		}),
		Neurons: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "neurograph_neurons",
			Help: "Neurons in the network by type.",
		}, []string{"type"}),
		Connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neurograph_connections",
			Help: "Connections in the network.",
		}),
		AverageActivation: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neurograph_average_activation",
			Help: "Mean neuron activation at the last snapshot.",
		}),
		AnimationClock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "neurograph_animation_clock",
			Help: "Current animation clock value.",
		}),
	}
}

// Register adds every collector to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{
		c.Operations, c.RefusedConnections, c.Neurons,
		c.Connections, c.AverageActivation, c.AnimationClock,
	} {
		if err := reg.Register(col); err != nil {
			return err
		}
	}
	return nil
}

func (c *Collector) Op(name string) {
	if c == nil {
		return
	}
	c.Operations.WithLabelValues(name).Inc()
}

func (c *Collector) Refused() {
	if c == nil {
		return
	}
	c.RefusedConnections.Inc()
}

func (c *Collector) Clock(v float64) {
	if c == nil {
		return
	}
	c.AnimationClock.Set(v)
}

// Observe publishes the gauges derived from stats.
func (c *Collector) Observe(stats model.Stats) {
	if c == nil {
		return
	}
	c.Neurons.WithLabelValues(string(model.Input)).Set(float64(stats.InputNeurons))
	c.Neurons.WithLabelValues(string(model.Hidden)).Set(float64(stats.HiddenNeurons))
	c.Neurons.WithLabelValues(string(model.Output)).Set(float64(stats.OutputNeurons))
	c.Neurons.WithLabelValues("other").Set(float64(stats.TotalNeurons - stats.InputNeurons - stats.HiddenNeurons - stats.OutputNeurons))
	c.Connections.Set(float64(stats.TotalConnections))
	c.AverageActivation.Set(stats.AverageActivation)
}
