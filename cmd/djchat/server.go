package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/djchat/internal/backup"
	"github.com/thatcatcamp/djchat/internal/config"
	"github.com/thatcatcamp/djchat/internal/db"
	"github.com/thatcatcamp/djchat/internal/handlers"
	"github.com/thatcatcamp/djchat/internal/middleware"
	"github.com/thatcatcamp/djchat/internal/routes"
	"github.com/thatcatcamp/djchat/internal/themes"
	"golang.org/x/time/rate"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server operations",
	Long:  "Start and manage the DJCHAT HTTP server",
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		mustInitSystemDB()

		if err := runServer(); err != nil {
			fatalf("Server error: %v", err)
		}
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)
}

func runServer() error {
	logger := slog.Default()
	gin.SetMode(gin.ReleaseMode)

	iconsDir := config.GetString("storage.icons_dir")
	if err := os.MkdirAll(iconsDir, 0755); err != nil {
		return fmt.Errorf("failed to create icons directory: %w", err)
	}

	tlsEnabled := config.GetBool("server.tls_enabled")

	h := handlers.New(db.GetDB(), logger, iconsDir)
	engine := routes.NewEngine(h, routes.Options{
		Factory:       themes.NewFactory(config.GetString("theme.palette")),
		Logger:        logger,
		SecureCookies: tlsEnabled,
		BlockedIPs:    config.GetStringSlice("security.blocked_ips"),
		LoginLimiter:  middleware.PerMinute(config.GetInt("ratelimit.login_per_minute")),
		APILimiter: middleware.NewRateLimiter(
			rate.Limit(config.GetFloat64("ratelimit.api_rps")),
			config.GetInt("ratelimit.api_burst"),
		),
	})

	if stop := startBackups(logger, iconsDir); stop != nil {
		defer stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	httpAddr := ":" + config.GetString("server.http_port")
	var servers []*http.Server
	errCh := make(chan error, 2)

	if tlsEnabled {
		httpsPort := config.GetString("server.https_port")
		certFile := config.GetString("server.tls_cert")
		keyFile := config.GetString("server.tls_key")
		if certFile == "" || keyFile == "" {
			return errors.New("server.tls_cert and server.tls_key are required when TLS is enabled")
		}

		// Plain HTTP only redirects
		redirect := gin.New()
		redirect.Use(gin.Recovery(), middleware.HTTPSRedirectMiddleware(httpsPort))

		httpSrv := newHTTPServer(httpAddr, redirect)
		httpsSrv := newHTTPServer(":"+httpsPort, engine)
		servers = append(servers, httpSrv, httpsSrv)

		go serve(errCh, func() error { return httpSrv.ListenAndServe() })
		go serve(errCh, func() error { return httpsSrv.ListenAndServeTLS(certFile, keyFile) })
		logger.Info("server listening", "http", httpAddr, "https", httpsSrv.Addr)
	} else {
		httpSrv := newHTTPServer(httpAddr, engine)
		servers = append(servers, httpSrv)

		go serve(errCh, func() error { return httpSrv.ListenAndServe() })
		logger.Info("server listening", "http", httpAddr, "tls", false)
	}

	select {
	case err := <-errCh:
		shutdown(servers, logger)
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdown(servers, logger)
		return nil
	}
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

func serve(errCh chan<- error, listen func() error) {
	if err := listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errCh <- err
	}
}

func shutdown(servers []*http.Server, logger *slog.Logger) {
	timeout := config.GetDuration("server.shutdown_timeout")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "addr", srv.Addr, "error", err)
		}
	}
}

// startBackups runs the backup scheduler for sqlite databases when
// backup.interval is set. The returned func stops it and waits.
func startBackups(logger *slog.Logger, iconsDir string) func() {
	interval := config.GetDuration("backup.interval")
	if interval <= 0 {
		return nil
	}
	if db.GetDB().Dialector.Name() != "sqlite" {
		logger.Warn("backup scheduler disabled", "reason", backup.ErrUnsupportedDatabase.Error())
		return nil
	}

	scheduler := backup.NewScheduler(backup.NewManager(db.GetDB(), config.GetString("backup.path"), iconsDir), logger)
	scheduler.Interval = interval
	if keep := config.GetInt("backup.keep"); keep > 0 {
		scheduler.Keep = keep
	}

	done := scheduler.Start()
	logger.Info("backup scheduler started", "interval", interval.String())

	return func() {
		scheduler.Stop()
		<-done
	}
}
