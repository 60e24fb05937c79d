package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/iceslide/internal/platform/httpapi"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the HTTP board API",
	Long: `Serve generated boards as JSON for web front ends.

Endpoints:
  GET /health          - Liveness check
  GET /difficulties    - Configured presets
  GET /board           - A new board with its shortest solution
                         (?difficulty=hard&cols=12&rows=8&moves=9&rocks=20)

Examples:
  iceslide web
  iceslide web --addr :9090 --config ./iceslide.yaml`,
	Args: cobra.NoArgs,
	Run:  runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address")
}

func runWeb(_ *cobra.Command, _ []string) {
	server := httpapi.NewServer(httpapi.Options{
		ConfigPath: flagConfig,
		Seed:       flagSeed,
		Logger:     newLogger("iceslide-http"),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving boards on %s\n", flagWebAddr)
	if err := server.ListenAndServe(ctx, flagWebAddr); err != nil {
		fatalf("server: %v", err)
	}
}
