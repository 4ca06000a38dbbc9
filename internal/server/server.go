// Package server hosts the go-app shell: it serves the compiled WASM
// client, the static assets, and a health endpoint. The authoritative
// game engine is a separate service; this process never sees a card.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/frontend"
)

// Config is the shell server configuration, loaded from env/flags in
// cmd/server.
type Config struct {
	// Addr to listen on. Empty picks a free port on localhost.
	Addr string
	// BackendWS is the websocket URL of the game engine, advertised
	// to the WASM client through the app environment. Empty lets the
	// client fall back to its own host.
	BackendWS string
}

// ServerState is published on the started channel once the listener
// is up, so callers (and tests) learn the bound address.
type ServerState struct {
	Address string
}

// Run starts the shell server and blocks until the context is
// canceled. If started is non-nil it receives the ServerState after
// the listener binds.
func Run(ctx context.Context, cfg Config, started chan<- *ServerState) error {
	// The prerenderer walks the same components the browser runs, so
	// the global client state must exist server-side too.
	frontend.InitState()
	app.Route("/", func() app.Composer { return &frontend.Root{} })

	env := map[string]string{}
	if cfg.BackendWS != "" {
		env["BUDALLAS_BACKEND_WS"] = cfg.BackendWS
	}

	h := &app.Handler{
		Name:        "Budallas",
		Description: "A trick-taking card duel",
		Env:         env,
		Styles: []string{
			"/web/css/pico.min.css",
			"/web/css/main.css",
		},
	}

	mux := http.NewServeMux()
	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/", h)

	addr := cfg.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	state := &ServerState{Address: ln.Addr().String()}
	if started != nil {
		started <- state
	}

	srv := &http.Server{Handler: mux}

	go func() {
		klog.Infof("Server started on %s", state.Address)
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			klog.Errorf("Server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Infof("Shutting down server...")
	return srv.Shutdown(shutdownCtx)
}
