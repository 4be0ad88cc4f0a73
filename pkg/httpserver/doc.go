// Package httpserver wraps net/http with graceful shutdown, signal handling,
// environment-driven configuration, and health-check handlers.
//
// Run blocks until the context is cancelled or an interrupt/TERM signal is
// received, then drains in-flight requests within the shutdown timeout.
// Startup and shutdown failures are wrapped with the ErrStart and ErrShutdown
// sentinels for errors.Is checks.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
