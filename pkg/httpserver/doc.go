// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown, and provides liveness and readiness probe handlers.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server", logger.Error(err))
//	}
package httpserver
