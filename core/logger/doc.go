// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production).
//
// # Context Awareness
//
// The WithLanguage helper attaches the configured dataset language to the
// log entry, ensuring that logs produced by independent library instances
// (one per language) can be told apart.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Catalog loaded")
package logger
