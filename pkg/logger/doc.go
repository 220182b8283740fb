// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers that keep key names consistent across the
// transition guard, the notifier and the CLI.
//
// New picks a text or JSON handler and applies static attributes. When
// ContextExtractor funcs are registered, each record also gets the attributes
// they pull from its context:
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvProduction, "statusguard"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "transition checked",
//	    logger.Field("status"),
//	    logger.FromState("draft"),
//	    logger.ToState("review"),
//	    logger.Outcome(true),
//	)
//
// Attribute helpers return an empty slog.Attr for nil input; slog handlers
// drop empty attributes.
package logger
