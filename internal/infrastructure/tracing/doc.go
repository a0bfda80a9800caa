/*
Package tracing records spans for launch and install operations.

A span covers one dispatch from classification to the registry record. Spans
are buffered and written to the structured log by a collector goroutine, so a
slow log sink never stalls a launch.

# Usage

	tracer := tracing.New("alteron", logger)
	defer tracer.Close()

	span, ctx := tracer.StartSpan(ctx, "launch")
	defer tracer.Submit(span)

	span.SetTag("platform", "windows")

Spans started from a context that already carries a trace share its trace ID
and point at the enclosing span as their parent.
*/
package tracing
