// Package logging provides structured logging for Ditto client
// applications.
//
// This package wraps Go's standard log/slog package to provide
// consistent, structured logging with level-based filtering. The
// ditto.Client accepts any logger satisfying its small Logger interface;
// *logging.Logger satisfies it directly.
//
// # Configuration
//
// Logging is configured via the LoggingConfig section of the client
// configuration:
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("connected", "host", cfg.Broker.Host)
//
// Never log credentials or message payloads that may carry secrets.
package logging
