// Package logger builds *slog.Logger values from functional options and
// decorates the handler so that attributes stored in a context.Context (for
// example a run id) are added to every record logged with that context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "fieldcheck"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "form validated", logger.Field("email"), logger.Kind(validator.Email))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
