// Package httpserver wraps net/http's Server with graceful shutdown,
// functional options, and environment-driven configuration.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil { ... }
//
// Run blocks until the context cancels, SIGINT/SIGTERM arrives, or the
// listener fails, then drains in-flight requests within the shutdown
// timeout. The default write timeout is disabled because validation
// feedback streams over long-lived SSE connections.
package httpserver
