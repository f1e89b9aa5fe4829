package logger

import (
	"context"

	"go.uber.org/zap"
)

type fieldsKey struct{}

// RequestInfo identifies the API request a log entry belongs to
type RequestInfo struct {
	RequestID string
	Method    string
	Route     string
}

// WithRequestInfo returns a context whose logger tags every entry with the request info
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	fields := []zap.Field{zap.String("request_id", info.RequestID)}
	if info.Method != "" {
		fields = append(fields, zap.String("method", info.Method))
	}
	if info.Route != "" {
		fields = append(fields, zap.String("route", info.Route))
	}
	return WithFields(ctx, fields...)
}

// WithFields returns a context carrying additional log fields
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []zap.Field {
	fields, _ := ctx.Value(fieldsKey{}).([]zap.Field)
	return fields
}
