package logging

import (
	"context"

	"go.uber.org/zap"
)

type runCtxKey struct{}
type strategyCtxKey struct{}

// WithRunID tags ctx with the id of one evaluation run.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runCtxKey{}, id)
}

// WithStrategy tags ctx with the strategy under evaluation.
func WithStrategy(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, strategyCtxKey{}, name)
}

// ContextFields extracts the tagged fields from ctx.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if id, ok := ctx.Value(runCtxKey{}).(string); ok && id != "" {
		fields = append(fields, zap.String("run.id", id))
	}
	if name, ok := ctx.Value(strategyCtxKey{}).(string); ok && name != "" {
		fields = append(fields, zap.String("strategy", name))
	}
	return fields
}
