package main

// Probe the API's health endpoint and reflect the result as an exit code:
//   go run ./cmd/healthcheck [-config healthcheck.yaml]
// Exit 0 when the API is online, 1 otherwise. With interval > 0 it keeps
// watching and logs every state transition instead.

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/McFranco99/ToolHR/internal/healthping"
	"github.com/McFranco99/ToolHR/internal/shared/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML healthcheck config")
	flag.Parse()

	cfg, err := healthping.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("healthcheck: %v", err)
	}

	pinger := healthping.New(cfg.Target, cfg.Timeout)

	if cfg.Interval > 0 {
		watch(pinger, cfg)
		return
	}

	status := pinger.Check(context.Background())
	fmt.Println(status.Label)
	if status != healthping.StatusOnline {
		os.Exit(1)
	}
}

func watch(pinger *healthping.Pinger, cfg healthping.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pinger.OnChange = func(s healthping.Status) {
		telemetry.Info("healthcheck.transition", map[string]any{
			"target": cfg.Target,
			"label":  s.Label,
			"class":  s.Class,
		})
	}
	pinger.Watch(ctx, cfg.Interval)
}
