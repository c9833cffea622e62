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
	"runtime/debug"
	"syscall"
	"time"

	"github.com/Zachkp/hustlr/config"
	"github.com/Zachkp/hustlr/log"
	"github.com/Zachkp/hustlr/parallax"
	"github.com/Zachkp/hustlr/tracking"
	"github.com/Zachkp/hustlr/waitlist"
	"github.com/gin-gonic/gin"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	configLoc := flag.String("c", "./config.yml", "The location of the configuration file. A missing file is ignored and the environment is used.")
	printVersion := flag.Bool("v", false, "The version of hustlr.")
	topPaths := flag.Int("n", 10, "The number of top paths to list. Works in combination with the stats command.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [serve|stats|config]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *printVersion {
		buildInfo, ok := debug.ReadBuildInfo()
		if ok && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
			fmt.Println(buildInfo.Main.Version)
			return
		}
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*configLoc)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := log.InitializeDefaultLogger(os.Stderr, cfg.LogLevel(), cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmd := flag.Arg(0); cmd {
	case "", "serve":
		err = serve(ctx, cfg, logger)
	case "stats":
		err = printStats(ctx, cfg, os.Stdout, *topPaths)
	case "config":
		err = cfg.WriteYAML(os.Stdout)
	default:
		flag.Usage()
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Error(err.Error())
		stop()
		os.Exit(1)
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	s := &site{
		logger:       logger,
		submitter:    waitlist.NewSimulatedSubmitter(cfg.Waitlist.Delay),
		interval:     cfg.Hero.TypewriterInterval,
		staticDir:    cfg.Server.StaticDir,
		layout:       parallax.DefaultLayout,
		keyframeStep: cfg.Hero.KeyframeStep,
		now:          time.Now,
	}

	if cfg.Tracking.Enabled {
		store, err := tracking.Open(cfg.Tracking.DBPath, cfg.Tracking.Salt)
		if err != nil {
			return err
		}
		defer store.Close()
		cleaned := make(chan struct{})
		go func() {
			defer close(cleaned)
			if _, err := store.Cleanup(ctx, cfg.Tracking.Retention); err != nil {
				logger.Error("error cleaning up old visits", slog.Any("err", err))
			}
		}()
		defer func() { <-cleaned }()
		s.tracker = tracking.NewTracker(store)
		defer s.tracker.Wait()
		logger.Info("visitor tracking enabled", slog.String("db", cfg.Tracking.DBPath))
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(s),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("addr", srv.Addr), slog.String("version", version))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
