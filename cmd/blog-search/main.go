package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aryannaik/blog-search/internal/config"
	"github.com/aryannaik/blog-search/internal/content"
	"github.com/aryannaik/blog-search/internal/index"
	"github.com/aryannaik/blog-search/internal/server"
)

func main() {
	configPath := flag.String("config", "blog-search.yaml", "Path to YAML config file")
	checkFlag := flag.Bool("check", false, "Load posts, build the index, print the count, and exit")
	watchFlag := flag.Bool("watch", false, "Rebuild the index when the posts directory changes")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *watchFlag {
		cfg.Watch = true
	}

	rebuild := func() (*index.Index, error) {
		posts, err := content.Load(cfg.PostsDir)
		if err != nil {
			return nil, err
		}
		return index.Build(posts), nil
	}

	idx, err := rebuild()
	if err != nil {
		slog.Error("build index", "error", err)
		os.Exit(1)
	}
	slog.Info("index built", "posts", idx.Len(), "dir", cfg.PostsDir)

	if *checkFlag {
		fmt.Printf("%d posts indexed from %s\n", idx.Len(), cfg.PostsDir)
		return
	}

	handlers := server.NewHandlers(idx, rebuild)
	srv := server.New(cfg.Port, cfg.StaticDir, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		go func() {
			err := content.Watch(ctx, cfg.PostsDir, func() {
				if err := handlers.Reload(); err != nil {
					slog.Error("reload after change", "error", err)
				}
			})
			if err != nil {
				slog.Error("watch posts", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
		return
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
}
