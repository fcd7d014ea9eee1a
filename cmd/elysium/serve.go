package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/3-lines-studio/elysium"
	"github.com/3-lines-studio/elysium/internal/adapters/cli"
	"github.com/3-lines-studio/elysium/internal/app"
	"github.com/3-lines-studio/elysium/internal/db"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	skipMigrate bool
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.skipMigrate, "skip-migrate", false, "Do not apply pending migrations on start")

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	cfg, logger, err := loadConfig(cmd, rootFlags)
	if err != nil {
		return err
	}

	client, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	if !opts.skipMigrate {
		if _, err := client.Migrate(ctx); err != nil {
			return err
		}
	}

	a := elysium.New(
		elysium.WithLogger(logger),
		elysium.WithDev(cfg.Dev),
		elysium.WithPublicDir(cfg.Server.PublicDir),
	)
	app.Routes(a, db.NewTodoStore(client), logger)

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
	}

	srv := &http.Server{
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	output := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
	output.PrintHeader("Elysium")
	output.PrintURL("Listening", "http://"+displayAddr(ln.Addr()))
	if cfg.Dev {
		output.PrintStep("", "Dev mode: watching %s", cfg.Server.PublicDir)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return a.Watch(gctx, cfg.Server.PublicDir)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down", "timeout", shutdownTimeout)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	output.PrintDone("Server stopped")
	return nil
}

func displayAddr(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok || tcp.IP.IsUnspecified() {
		if ok {
			return fmt.Sprintf("localhost:%d", tcp.Port)
		}
		return addr.String()
	}
	return tcp.String()
}
