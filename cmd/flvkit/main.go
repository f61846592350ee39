// flvkit is a multi-verb CLI over the FLV parsing/analysis/rewrite engine:
// analyze, repair, and rewrite operate on local files directly; serve runs
// the HTTP host.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"flvkit/internal/config"
	"flvkit/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "repair":
		err = runRepair(os.Args[2:])
	case "rewrite":
		err = runRewrite(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("flvkit %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flvkit <analyze|repair|rewrite|serve> [flags]")
}

// runServe loads configuration, starts the HTTP host, and blocks until a
// termination signal triggers graceful shutdown.
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "configs/flvkit.example.yaml", "path to configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx := context.Background()
	srv := server.New(cfg)
	shutdownHandler := server.NewShutdownHandler(srv, ctx)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("server error: %v", err)
			os.Exit(1)
		}
	}()

	if err := shutdownHandler.Wait(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Println("server shut down cleanly")
	return nil
}
