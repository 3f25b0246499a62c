package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ExpertVagabond/solana-mcp-server/internal/client"
	"github.com/ExpertVagabond/solana-mcp-server/internal/config"
	"github.com/ExpertVagabond/solana-mcp-server/internal/network"
	"github.com/ExpertVagabond/solana-mcp-server/internal/server"
	"github.com/ExpertVagabond/solana-mcp-server/internal/tool"
	"github.com/ExpertVagabond/solana-mcp-server/internal/wallet"
)

const (
	serverName    = "solana-mcp-server"
	serverVersion = "1.0.0"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serverName, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := &tool.Session{
		Wallets:  wallet.NewStore(),
		Networks: network.NewManager(cfg, client.Dial),
		Cfg:      cfg,
		Log:      log,
	}

	id, endpoint := session.Networks.Current()
	log.Info("server starting",
		zap.String("network", string(id)),
		zap.String("endpoint", endpoint))

	srv := server.New(session, tool.DefaultRegistry(), serverName, serverVersion)
	err = srv.Serve(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("server stopped")
	return nil
}

// newLogger builds a production logger writing to stderr. Stdout belongs to
// the wire protocol and must stay clean.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
