// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("engine ready", zap.Int("providers", 4))
//	logger.Error("launch failed", zap.Error(err))
package logging
