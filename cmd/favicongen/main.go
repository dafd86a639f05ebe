// Command favicongen writes the favicon asset set for the site.
//
// Configuration comes from FAVICON_* environment variables; flags override
// the most common ones.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mushroomlab/favicon"
)

func main() {
	cfg, err := favicon.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		outDir  = flag.String("out", cfg.OutDir, "output directory")
		verbose = flag.Bool("v", false, "log every rendering step")
		verify  = flag.Bool("verify", false, "check the output directory after writing")
	)
	flag.Parse()

	cfg.OutDir = *outDir
	if *verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	favicon.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := favicon.NewGenerator(cfg)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	report, err := g.Run(ctx)
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}

	if *verify {
		if err := favicon.Verify(report.Dir); err != nil {
			log.Fatalf("Verification failed: %v", err)
		}
	}

	log.Printf("Wrote %d files to %s\n", len(report.Files), report.Dir)
}
