package jobs

import (
	"context"
	"log/slog"
	"time"

	"naplata/internal/core/port"
)

// StartReminderLoops schedules the daily installment and hosting reminder
// runs. The interval is configurable so tests and staging can run them
// tighter; the reminder service itself keeps runs idempotent, a record is
// only notified once.
func StartReminderLoops(r *Runner, reminders port.ReminderUseCase, logger *slog.Logger, interval time.Duration) {
	r.Every(interval, "installment_reminders", func(ctx context.Context) error {
		report, err := reminders.SendInstallmentReminders(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		recordReport("installment", report, logger)
		return nil
	})

	r.Every(interval, "hosting_reminders", func(ctx context.Context) error {
		report, err := reminders.SendHostingReminders(ctx, time.Now().UTC())
		if err != nil {
			return err
		}
		recordReport("hosting", report, logger)
		return nil
	})
}

func recordReport(kind string, report *port.ReminderReport, logger *slog.Logger) {
	remindersSent.WithLabelValues(kind).Add(float64(report.Sent))
	remindersFailed.WithLabelValues(kind).Add(float64(report.Failed))
	if report.Sent > 0 || report.Failed > 0 {
		logger.Info("reminder run finished",
			slog.String("kind", kind),
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed))
	}
}
