package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context carrying them.
type LogFields struct {
	UserID      *int64
	WorkspaceID *int64
	ProjectID   *int64
	TaskID      *int64
	MemberID    *int64
	RequestID   *string
	Component   string // e.g. "planboard.service.task"
}

// WithLogFields enriches ctx with fields. Non-nil / non-empty values in fields
// override what the context already carries.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields attached to ctx, or an empty LogFields.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.WorkspaceID != nil {
		result.WorkspaceID = next.WorkspaceID
	}
	if next.ProjectID != nil {
		result.ProjectID = next.ProjectID
	}
	if next.TaskID != nil {
		result.TaskID = next.TaskID
	}
	if next.MemberID != nil {
		result.MemberID = next.MemberID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v, for inline LogFields literals.
func Ptr[T any](v T) *T {
	return &v
}
