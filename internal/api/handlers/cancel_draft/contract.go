package cancel_draft

import "context"

type DraftService interface {
	Cancel(ctx context.Context, draftID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
