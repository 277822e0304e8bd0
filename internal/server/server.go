// Package server exposes one network over HTTP. Every request takes the
// server mutex before touching the network.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"neurograph/internal/storage"
	"neurograph/pkg/neurograph"
)

type Server struct {
	mu       sync.Mutex
	network  *neurograph.Network
	session  *storage.Session
	recorder storage.Recorder
	logger   *slog.Logger
}

type Config struct {
	Network *neurograph.Network
	// Recorder, when set, receives a frame after every step.
	Recorder storage.Recorder
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

type neuronRequest struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Type string  `json:"type"`
}

type connectionRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type stepRequest struct {
	Delta float64 `json:"delta"`
}

type orbitRequest struct {
	Time float64 `json:"time"`
}

type predictRequest struct {
	Inputs []float64 `json:"inputs"`
}

type predictResponse struct {
	Outputs []float64 `json:"outputs"`
}

type idResponse struct {
	ID int `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandler(cfg Config) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{network: cfg.Network, recorder: cfg.Recorder, logger: logger}
	if cfg.Recorder != nil {
		s.session = storage.NewSession(cfg.Recorder)
	}

	r := chi.NewRouter()
	r.Get("/snapshot", s.handleSnapshot)
	r.Post("/neurons", s.handleAddNeuron)
	r.Post("/connections", s.handleAddConnection)
	r.Post("/clear", s.handleClear)
	r.Post("/sample", s.handleSample)
	r.Post("/step", s.handleStep)
	r.Post("/orbit", s.handleOrbit)
	r.Post("/predict", s.handlePredict)
	r.Get("/dump", s.handleDump)
	r.Get("/graph.dot", s.handleDOT)
	if s.session != nil {
		r.Get("/frames", s.handleFrames)
		r.Get("/frames/{index}", s.handleFrame)
	}
	if cfg.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.network.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAddNeuron(w http.ResponseWriter, r *http.Request) {
	var body neuronRequest
	if !decode(w, r, &body) {
		return
	}
	s.mu.Lock()
	id := s.network.AddNeuron(body.X, body.Y, body.Type)
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleAddConnection(w http.ResponseWriter, r *http.Request) {
	var body connectionRequest
	if !decode(w, r, &body) {
		return
	}
	s.mu.Lock()
	id, ok := s.network.AddConnection(body.From, body.To)
	s.mu.Unlock()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "neuron not found"})
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.network.Clear()
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.network.BuildSample()
	snap := s.network.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	var body stepRequest
	if !decode(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.network.Step(body.Delta)
	snap := s.network.Snapshot()
	if s.session != nil {
		if _, err := s.session.Record(r.Context(), s.network.AnimationTime(), snap); err != nil {
			s.logger.Error("record frame failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleOrbit(w http.ResponseWriter, r *http.Request) {
	var body orbitRequest
	if !decode(w, r, &body) {
		return
	}
	s.mu.Lock()
	s.network.Orbit(body.Time)
	snap := s.network.Snapshot()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var body predictRequest
	if !decode(w, r, &body) {
		return
	}
	s.mu.Lock()
	outputs := s.network.Predict(body.Inputs)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, predictResponse{Outputs: outputs})
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dump := s.network.DumpString()
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(dump))
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	dot := s.network.DOT()
	s.mu.Unlock()
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	_, _ = w.Write([]byte(dot))
}

func (s *Server) handleFrames(w http.ResponseWriter, r *http.Request) {
	frames, err := s.recorder.ListFrames(r.Context(), s.session.ID)
	if err != nil {
		s.logger.Error("list frames failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, frames)
}

func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid frame index"})
		return
	}
	frame, ok, err := s.recorder.GetFrame(r.Context(), s.session.ID, index)
	if err != nil {
		s.logger.Error("get frame failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "frame not found"})
		return
	}
	writeJSON(w, http.StatusOK, frame)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
