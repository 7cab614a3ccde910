// Package logging provides structured logging for conflictpane.
//
// It wraps Go's log/slog with a JSON handler. Logs go to {dir}/debug.log
// when a directory is configured and to stderr otherwise. Child loggers
// carry persistent attributes such as the repository and the pane selector.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/state", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	paneLog := logger.WithRepo("/src/project").WithSelector("merge-conflicts")
//	paneLog.Debug("real item attached", "title", "Merge Conflicts (3)")
//
// Components that accept an *slog.Logger can be handed [Logger.Slog].
// Use [NopLogger] in tests or when logging is disabled.
package logging
