package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/server"
)

var (
	flagAddr      = flag.String("addr", "", "Address to listen on (default: $BUDALLAS_ADDR, or auto-port on localhost)")
	flagBackendWS = flag.String("backend_ws", "", "WebSocket URL of the game backend (default: $BUDALLAS_BACKEND_WS)")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	// Optional .env for local development; absence is fine.
	if err := godotenv.Load(); err == nil {
		klog.V(1).Infof(".env loaded")
	}

	cfg := server.Config{
		Addr:      *flagAddr,
		BackendWS: *flagBackendWS,
	}
	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("BUDALLAS_ADDR")
	}
	if cfg.BackendWS == "" {
		cfg.BackendWS = os.Getenv("BUDALLAS_BACKEND_WS")
	}

	started := make(chan *server.ServerState, 1)
	ctx := context.Background()

	go func() {
		state := <-started
		fmt.Printf("Budallas shell listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		log.Fatal(err)
	}
}
