// Package requestid attaches a correlation id to every HTTP request.
//
// An incoming X-Request-ID header is reused when it parses as an ID: 1 to 128
// bytes drawn from letters, digits, '-' and '_'. Anything else is replaced
// with a fresh UUID. The chosen id is stored in the request context, echoed
// in the response header, and exposed to slog through LoggerExtractor.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
