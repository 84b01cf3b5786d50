package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stunt-arcade/internal/platform/remote"
)

var (
	flagWSAddr        string
	flagWSIdleTimeout int
	flagWSNoStore     bool
)

var serveWSCmd = &cobra.Command{
	Use:   "serve-ws",
	Short: "Serve the difficulty engine over WebSocket",
	Long: `Start an HTTP server exposing the difficulty engine at /ws.

Every WebSocket connection owns a private engine. Clients send one JSON
request per text message and get one JSON reply back:

  {"op":"reset","seed":42}
  {"op":"next_wave"}
  {"op":"kill","timestamp":1250}
  {"op":"wave_complete","killed":9,"total":10}
  {"op":"power_up"}
  {"op":"tension","score":3400}
  {"op":"state"}
  {"op":"submit","score":3400,"wave":7,"max_combo":12,"player":"ann"}

GET /healthz reports the number of live connections.

Examples:
  stunt serve-ws
  stunt serve-ws --listen :9000
  stunt serve-ws --no-store`,
	Args: cobra.NoArgs,
	RunE: runServeWS,
}

func init() {
	serveWSCmd.Flags().StringVar(&flagWSAddr, "listen", ":8090", "HTTP listen address (host:port)")
	serveWSCmd.Flags().IntVar(&flagWSIdleTimeout, "idle-timeout", 5, "Idle timeout in minutes before disconnecting")
	serveWSCmd.Flags().BoolVar(&flagWSNoStore, "no-store", false, "Disable the submit op")
}

func runServeWS(_ *cobra.Command, _ []string) error {
	cfg := remote.DefaultServerConfig()
	cfg.Address = flagWSAddr
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagWSIdleTimeout) * time.Minute
	if flagWSNoStore {
		cfg.DBPath = ""
	}

	fmt.Printf("Serving engine on ws://localhost%s/ws\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return remote.NewServer(cfg).ListenAndServe()
}
