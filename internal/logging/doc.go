// Package logging wraps Zap with context-aware methods.
//
// # Usage
//
//	logger, err := logging.NewLogger(logging.NewDefaultConfig(), os.Stderr)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithRunID(ctx, "run-1")
//	logger.Info(ctx, "evaluated", zap.String("strategy", name))
//
// Fields stored in the context with WithRunID and WithStrategy are added to
// every entry logged with that context.
package logging
