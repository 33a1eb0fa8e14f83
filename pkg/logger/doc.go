// Package logger builds *slog.Logger values with functional options.
//
// New selects a text or JSON handler, applies the minimum level and static
// attributes, and wraps the handler so that registered ContextExtractor
// callbacks can add request-scoped attributes (a request id, for example) to
// every record logged with a context.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "fieldlimits")),
//	    logger.WithContextExtractors(requestIDExtractor),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, and Validation renders
// validator.ValidationErrors as a group of field messages:
//
//	log.WarnContext(ctx, "profile rejected", logger.Validation(verrs))
package logger
