package logging

import "log/slog"

// ShutdownWithLogging runs a shutdown func and logs its failure. It returns
// the error so callers can pick an exit code.
func ShutdownWithLogging(shutdown func() error, logger *slog.Logger, component string) error {
	if shutdown == nil {
		return nil
	}

	err := shutdown()
	if err != nil {
		LogError(logger, "shutdown failed", err, slog.String("component", component))
		return err
	}
	LogOperation(logger, "shutdown_complete", slog.String("component", component))
	return nil
}
