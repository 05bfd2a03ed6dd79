package logging

import (
	"context"
	"log/slog"

	"github.com/anaik-zam/CardConvert/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldCard is the standardized structured logging key for card identities (name:locale).
	FieldCard = "card"
	// FieldStage is the standardized structured logging key for pipeline stage names.
	FieldStage = "stage"
	// FieldCommand is the standardized structured logging key for external tool command lines.
	FieldCommand = "command"
)

// WithCard attaches a card identity to the context for downstream log records.
func WithCard(ctx context.Context, card string) context.Context {
	return services.WithCard(ctx, card)
}

// WithStage attaches a pipeline stage name to the context for downstream log records.
func WithStage(ctx context.Context, stage string) context.Context {
	return services.WithStage(ctx, stage)
}

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if card, ok := services.CardFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCard, card))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
