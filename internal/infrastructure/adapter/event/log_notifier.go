package event

import (
	"context"

	"github.com/schemaflow/migration-engine/internal/domain/port/core"
)

// LogNotifier is the default Notifier. Deployments with a mail or chat
// integration swap in their own implementation; the scheduler only sees the
// port.
type LogNotifier struct {
	logger core.Logger
}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier(logger core.Logger) core.Notifier {
	return &LogNotifier{logger: logger}
}

// Notify writes the notification to the log stream
func (n *LogNotifier) Notify(_ context.Context, teamID, subject, message string) {
	n.logger.Info("notification", map[string]any{
		"team_id": teamID,
		"subject": subject,
		"message": message,
	})
}
