package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"naplata/internal/core/port"
)

// ReminderService implements port.ReminderUseCase. It finds due records,
// sends email (and SMS when enabled) and marks each record so the next run
// skips it. A failed delivery leaves the record unmarked and never aborts
// the rest of the run.
type ReminderService struct {
	installments port.InstallmentRepository
	hosting      port.HostingRepository
	mailer       port.Mailer
	sms          port.SMSSender
	logger       *slog.Logger

	// hostingLookaheadDays is how far ahead renewal reminders go out.
	hostingLookaheadDays int
}

// NewReminderService creates a reminder service. lookaheadDays controls
// the hosting renewal window; the business default is 30.
func NewReminderService(
	installments port.InstallmentRepository,
	hosting port.HostingRepository,
	mailer port.Mailer,
	sms port.SMSSender,
	logger *slog.Logger,
	lookaheadDays int,
) *ReminderService {
	if lookaheadDays <= 0 {
		lookaheadDays = 30
	}
	return &ReminderService{
		installments:         installments,
		hosting:              hosting,
		mailer:               mailer,
		sms:                  sms,
		logger:               logger,
		hostingLookaheadDays: lookaheadDays,
	}
}

// SendInstallmentReminders notifies customers of unpaid installments due
// on the given day.
func (s *ReminderService) SendInstallmentReminders(ctx context.Context, day time.Time) (*port.ReminderReport, error) {
	due, err := s.installments.DueOn(ctx, truncateDay(day))
	if err != nil {
		return nil, err
	}

	var results []port.ReminderResult
	for _, inst := range due {
		if inst.Customer == nil || inst.Customer.Email == "" {
			s.logger.Warn("installment has no reachable customer", slog.String("installment_id", inst.ID.String()))
			continue
		}
		cust := inst.Customer
		res := port.ReminderResult{ID: inst.ID, Customer: cust.Name, Email: cust.Email}

		dueStr := formatDate(inst.DueDate)
		err := s.mailer.Send(ctx, port.EmailMessage{
			To:      cust.Email,
			Subject: installmentEmailSubject(),
			HTML:    installmentEmailBody(cust.Name, inst.Amount, dueStr),
		})
		if err == nil && s.sms.Enabled() && cust.Phone != "" {
			// SMS failure is logged but does not fail the reminder; the
			// email already went out
			if smsErr := s.sms.Send(ctx, cust.Phone, installmentSMSBody(cust.Name, inst.Amount, dueStr)); smsErr != nil {
				s.logger.Warn("sms delivery failed",
					slog.String("installment_id", inst.ID.String()), slog.Any("error", smsErr))
			}
		}
		if err != nil {
			s.logger.Error("installment reminder failed",
				slog.String("installment_id", inst.ID.String()), slog.Any("error", err))
			res.Err = err.Error()
			results = append(results, res)
			continue
		}

		if err := s.installments.SetReminderSent(ctx, inst.ID, true); err != nil {
			s.logger.Error("marking installment reminded failed",
				slog.String("installment_id", inst.ID.String()), slog.Any("error", err))
			res.Err = err.Error()
			results = append(results, res)
			continue
		}
		res.Success = true
		results = append(results, res)
	}

	return buildReport(results), nil
}

// SendHostingReminders notifies customers of hosting renewals falling due
// within the lookahead window starting at the given day.
func (s *ReminderService) SendHostingReminders(ctx context.Context, day time.Time) (*port.ReminderReport, error) {
	from := truncateDay(day)
	to := from.AddDate(0, 0, s.hostingLookaheadDays)

	renewing, err := s.hosting.RenewingBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var results []port.ReminderResult
	for _, h := range renewing {
		if h.Customer == nil || h.Customer.Email == "" {
			s.logger.Warn("hosting record has no reachable customer", slog.String("hosting_id", h.ID.String()))
			continue
		}
		cust := h.Customer
		res := port.ReminderResult{ID: h.ID, Customer: cust.Name, Email: cust.Email}

		daysLeft := int(h.RenewalDate.Sub(from).Hours() / 24)
		renewalStr := formatDate(h.RenewalDate)
		err := s.mailer.Send(ctx, port.EmailMessage{
			To:      cust.Email,
			Subject: hostingEmailSubject(),
			HTML:    hostingEmailBody(cust.Name, renewalStr, daysLeft),
		})
		if err == nil && s.sms.Enabled() && cust.Phone != "" {
			if smsErr := s.sms.Send(ctx, cust.Phone, hostingSMSBody(cust.Name, renewalStr, daysLeft)); smsErr != nil {
				s.logger.Warn("sms delivery failed",
					slog.String("hosting_id", h.ID.String()), slog.Any("error", smsErr))
			}
		}
		if err != nil {
			s.logger.Error("hosting reminder failed",
				slog.String("hosting_id", h.ID.String()), slog.Any("error", err))
			res.Err = err.Error()
			results = append(results, res)
			continue
		}

		if err := s.hosting.SetReminderSent(ctx, h.ID, true); err != nil {
			s.logger.Error("marking hosting reminded failed",
				slog.String("hosting_id", h.ID.String()), slog.Any("error", err))
			res.Err = err.Error()
			results = append(results, res)
			continue
		}
		res.Success = true
		results = append(results, res)
	}

	return buildReport(results), nil
}

func buildReport(results []port.ReminderResult) *port.ReminderReport {
	sent := lo.CountBy(results, func(r port.ReminderResult) bool { return r.Success })
	return &port.ReminderReport{
		Sent:    sent,
		Failed:  len(results) - sent,
		Results: results,
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
