package live

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumen-ui/lumen/pkg/lumen"
	"github.com/lumen-ui/lumen/pkg/render"
	"github.com/lumen-ui/lumen/pkg/vdom"
)

// Server serves a component tree over HTTP and WebSocket.
type Server struct {
	cfg      Config
	root     func() vdom.Component
	router   chi.Router
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a server around a root component factory. Each
// session calls the factory once, so sessions never share component
// state.
func NewServer(root func() vdom.Component, opts ...Option) *Server {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.applyDefaults()

	s := &Server{
		cfg:  cfg,
		root: root,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/live", s.handleLive)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Handler exposes the router, for embedding in a larger application.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the configured address until Shutdown.
func (s *Server) ListenAndServe() error {
	s.http = &http.Server{
		Addr:    s.cfg.Address,
		Handler: s.router,
	}
	s.cfg.Logger.Info("listening", "address", s.cfg.Address)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("live: serve: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}

// handleIndex serves the page shell with the component rendered in place.
// The client script reconnects over /live for interactivity.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html, err := RenderComponent(s.root())
	if err != nil {
		s.cfg.Logger.Error("index render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, pageShell, render.EscapeText(s.cfg.PageTitle), html)
}

// handleLive upgrades to WebSocket and runs a session for the connection.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.cfg.Logger.Error("upgrade failed", "error", err)
		return
	}
	sess := newSession(c, s.root(), &s.cfg)
	sess.Run()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

// RenderComponent renders a component one-shot, outside any session. The
// owner scope is disposed before returning.
func RenderComponent(c vdom.Component) (string, error) {
	owner := lumen.NewOwner(nil)
	defer owner.Dispose()

	var tree *vdom.VNode
	lumen.WithOwner(owner, func() {
		tree = vdom.Expand(&vdom.VNode{Kind: vdom.KindComponent, Comp: c})
	})
	return render.ToString(tree)
}

const pageShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body data-live="/live">%s</body>
</html>
`
