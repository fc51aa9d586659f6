package logging

import "context"

type contextKey string

const contextFieldsKey contextKey = "blogcheck.logging.fields"

// ContextWithFields returns a context carrying structured logging fields that
// console loggers merge into every entry written with that context. Fields
// already present on ctx are kept; the supplied values win on conflict.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}

	existing := ContextFields(ctx)
	merged := make(map[string]any, len(existing)+len(fields))
	for key, value := range existing {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return context.WithValue(ctx, contextFieldsKey, merged)
}

// ContextFields returns a copy of the fields attached with ContextWithFields.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, ok := ctx.Value(contextFieldsKey).(map[string]any)
	if !ok || len(fields) == 0 {
		return nil
	}

	copied := make(map[string]any, len(fields))
	for key, val := range fields {
		copied[key] = val
	}
	return copied
}

// RunID returns the run identifier attached to ctx, or an empty string.
func RunID(ctx context.Context) string {
	id, _ := ContextFields(ctx)[FieldRunID].(string)
	return id
}
