// Package web serves the bot status page, a JSON and SSE feed of the last
// announced signal, a health check and the prometheus metrics.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const signalPollInterval = 2 * time.Second

type signalState interface {
	Last() *domain.Signal
	Running() bool
}

// Status is the payload of /api/signal.
type Status struct {
	Pair     string         `json:"pair"`
	Interval string         `json:"interval"`
	Running  bool           `json:"running"`
	Signal   *domain.Signal `json:"signal"`
}

// Server exposes the tracker state over HTTP: a small HTML page, a JSON
// endpoint, an SSE stream of signal changes and prometheus metrics.
type Server struct {
	Addr     string
	State    signalState
	Pair     domain.Pair
	Interval string

	pollInterval time.Duration
	l            *zap.Logger
}

// NewServer creates a new web server instance.
func NewServer(l *zap.Logger, addr string, state signalState, pair domain.Pair, interval string) *Server {
	return &Server{
		Addr:         addr,
		State:        state,
		Pair:         pair,
		Interval:     interval,
		pollInterval: signalPollInterval,
		l:            l,
	}
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/signal", s.handleSignal)
	mux.HandleFunc("/signal/stream", s.handleSignalStream)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Start runs the HTTP server (blocking) and shuts it down when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	s.l.Info("status server listening", zap.String("addr", s.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) status() Status {
	return Status{
		Pair:     s.Pair.Display(),
		Interval: s.Interval,
		Running:  s.State.Running(),
		Signal:   s.State.Last(),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if !s.State.Running() {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprint(w, "stopped")
		return
	}
	fmt.Fprint(w, "ok")
}

func (s *Server) handleSignal(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status()); err != nil {
		s.l.Error("failed to encode status", zap.Error(err))
	}
}

func (s *Server) handleSignalStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// send a comment heartbeat every 30s so proxies keep connection
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	pollTicker := time.NewTicker(s.pollInterval)
	defer pollTicker.Stop()

	var sent *domain.Signal
	sendSignal := func() error {
		last := s.State.Last()
		if last == nil || last == sent {
			return nil
		}
		payload, err := json.Marshal(last)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "event: signal\n")
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
		sent = last
		return nil
	}

	if err := sendSignal(); err != nil {
		s.l.Error("signal stream initial load", zap.Error(err))
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprintf(w, ": ping\n\n")
			flusher.Flush()
		case <-pollTicker.C:
			if err := sendSignal(); err != nil {
				s.l.Error("signal stream poll", zap.Error(err))
			}
		}
	}
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>trendalert</title>
  <style>
    :root { --bg:#ffffff; --ink:#111111; --ink-soft:#9c9c9c; --panel:#f6f6f6; }
    * { box-sizing:border-box; }
    body {
      margin:0; min-height:100vh; display:flex; align-items:center; justify-content:center;
      background:var(--bg); color:var(--ink); font-family:'Space Mono','JetBrains Mono',monospace;
    }
    #app {
      width:min(480px, 92vw); background:var(--panel); border:3px solid var(--ink);
      padding:2rem; box-shadow:12px 12px 0 rgba(0,0,0,.15);
    }
    .eyebrow { font-size:.6rem; text-transform:uppercase; letter-spacing:.2em; margin:0; color:var(--ink-soft); }
    .direction { font-size:2.4rem; margin:1rem 0; }
    .up { color:#0a8f3c; } .down { color:#c8102e; }
    dl { display:grid; grid-template-columns:auto 1fr; gap:.4rem 1rem; margin:0; }
    dt { color:var(--ink-soft); }
  </style>
</head>
<body>
<div id="app">
  <p class="eyebrow">SuperTrend alert</p>
  <div id="direction" class="direction">waiting...</div>
  <dl>
    <dt>pair</dt><dd id="pair">-</dd>
    <dt>timeframe</dt><dd id="interval">-</dd>
    <dt>price</dt><dd id="price">-</dd>
    <dt>observed</dt><dd id="observed">-</dd>
    <dt>loop</dt><dd id="running">-</dd>
  </dl>
</div>
<script>
const el = (id) => document.getElementById(id);
function renderSignal(sig){
  if(!sig){ return; }
  const dir = el('direction');
  dir.textContent = sig.direction === 'up' ? 'BUY' : 'SELL';
  dir.className = 'direction ' + sig.direction;
  el('price').textContent = sig.price;
  el('observed').textContent = new Date(sig.observed_at).toLocaleString();
}
fetch('/api/signal').then(r => r.json()).then(st => {
  el('pair').textContent = st.pair;
  el('interval').textContent = st.interval;
  el('running').textContent = st.running ? 'active' : 'stopped';
  renderSignal(st.signal);
});
const es = new EventSource('/signal/stream');
es.addEventListener('signal', (e) => renderSignal(JSON.parse(e.data)));
</script>
</body>
</html>`
