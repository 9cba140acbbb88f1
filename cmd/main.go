package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamenight/internal/config"
	"gamenight/internal/handlers"
	"gamenight/internal/logger"
	"gamenight/internal/repository"
	"gamenight/internal/repository/db"
	"gamenight/internal/server"
	"gamenight/internal/service"
	"gamenight/internal/storage"
)

const (
	uploadsURLPrefix = "/uploads"
	shutdownTimeout  = 10 * time.Second
)

func main() {
	// load configs/config.yml, .env and environment
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel, logger.FormatConsole).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := db.InitDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatalw("failed to init database", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close database", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	pictures := storage.NewLocalStore(cfg.Uploads.Dir, uploadsURLPrefix)
	services := service.NewService(repos, pictures, service.SessionOptions{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
	})
	apiHandler := handlers.NewHandler(services, log, handlers.Options{
		CookieName:     cfg.Session.CookieName,
		CookieSecure:   cfg.Session.Secure,
		SessionTTL:     cfg.Session.TTL,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		PublicDir:      cfg.Public.Dir,
		UploadsDir:     cfg.Uploads.Dir,
		UploadMaxBytes: cfg.Uploads.MaxBytes,
	})

	// start HTTP server; writes must outlive the per-request timeout
	srv := server.New(server.Timeouts{Write: cfg.HTTP.RequestTimeout + 5*time.Second})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.DB.Driver)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
