package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier writes events to a zap logger.
type LogNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier creates a notifier backed by logger.
func NewLogNotifier(logger *zap.SugaredLogger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, ev Event) {
	fields := []interface{}{"kind", string(ev.Kind), "entry_id", ev.EntryID, "at", ev.At}
	if ev.Kind == AdminLoginFailed {
		n.logger.Warnw(ev.Message, fields...)
		return
	}
	n.logger.Infow(ev.Message, fields...)
}
