// Package logger provides structured logging on top of log/slog with
// context-based attribute injection.
//
// Create a logger, optionally with context extractors that enrich every
// record logged through a context-aware call:
//
//	langExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if r, ok := i18n.FromContext(ctx); ok {
//			return slog.String("lang", r.Language()), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(langExtractor),
//	)
//	log.InfoContext(ctx, "rsvp submitted")
//
// NewNope returns a no-op logger for components where logging is optional.
package logger
