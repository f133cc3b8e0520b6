// Command server exposes the Greek name corrector as a JSON REST API.
// See package internal/server for the endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cours-de-latin/greeknames"
	"github.com/cours-de-latin/greeknames/internal/config"
	"github.com/cours-de-latin/greeknames/internal/logging"
	"github.com/cours-de-latin/greeknames/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rulesDir := flag.String("rules", "", "directory holding the rule documents (overrides RULES_DIR)")
	addr := flag.String("addr", "", "listen address host:port (overrides SERVER_HOST/SERVER_PORT)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)

	var rules greeknames.RuleSource
	if cfg.Rules.Enabled {
		dir := cfg.Rules.Dir
		if *rulesDir != "" {
			dir = *rulesDir
		}
		src := greeknames.NewFileRuleSource(dir, logger)
		// parse eagerly so problems show up at startup
		src.VocativeRules()
		src.AccusativeRules()
		rules = src
		logger.Info("rule documents enabled", slog.String("dir", dir))
	}

	if *addr != "" {
		host, port, err := net.SplitHostPort(*addr)
		if err != nil {
			return fmt.Errorf("invalid -addr %q: %w", *addr, err)
		}
		if cfg.Server.Port, err = strconv.Atoi(port); err != nil {
			return fmt.Errorf("invalid -addr port %q: %w", port, err)
		}
		cfg.Server.Host = host
	}

	srv := server.New(cfg, greeknames.New(rules), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-errCh
}
