// Package logger builds the application's log/slog logger.
//
// New applies functional options over JSON-at-info defaults, attaches request
// scoped values such as the request id through context extractors, and
// redacts sensitive keys such as password and cvv whatever the caller passes:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithOutput(io.MultiWriter(os.Stdout, file)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// NewFileWriter provides size based rotation through lumberjack. The attribute
// helpers in attr.go keep key names consistent across packages.
package logger
