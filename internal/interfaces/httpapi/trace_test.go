package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func tracedContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithRemoteSpanContext(context.Background(), sc)
}

func TestStartSpan(t *testing.T) {
	traced := tracedContext()

	tests := []struct {
		name      string
		ctx       context.Context
		span      string
		wantChild bool
	}{
		{name: "handler under traced request", ctx: traced, span: "httpapi.Handler.AdminDispatch", wantChild: true},
		{name: "middleware under traced request", ctx: traced, span: "httpapi.RequireAdmin"},
		{name: "helper under traced request", ctx: traced, span: "httpapi.writeJSON"},
		{name: "handler without parent", ctx: context.Background(), span: "httpapi.Handler.Healthz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, span := startSpan(tt.ctx, tt.span)
			defer span.End()

			if gotChild := ctx != tt.ctx; gotChild != tt.wantChild {
				t.Fatalf("startSpan(%q) child=%v want=%v", tt.span, gotChild, tt.wantChild)
			}
		})
	}
}
