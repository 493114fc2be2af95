// Package logger builds slog loggers and provides attribute helpers.
//
//	log := logger.New(logger.WithDevelopment("sessiondemo"))
//	log := logger.New(logger.WithProduction("sessiondemo"), logger.WithOutput(os.Stderr))
//
//	log.Info("server starting", logger.Component("server"), logger.Event("startup"))
//	log.Warn("session refresh skipped", logger.Error(err))
//
// Attribute helpers return an empty slog.Attr for nil or empty input, so
// they can be passed unconditionally.
//
// # Context values
//
// WithContextValue copies request-scoped strings from the context into
// every record logged with a *Context method:
//
//	log := logger.New(logger.WithContextValue("request_id", middleware.RequestIDKey{}))
//	log.InfoContext(r.Context(), "handled")
//
// # Configuration
//
//	LOG_LEVEL=debug|info|warn|error
//	LOG_FORMAT=text|json
package logger
