// Package billing reconstructs campaign billing periods. A campaign stores
// only its start date, its amounts and the periods staff have explicitly
// materialized; every other month is computed on the fly. Resolve answers
// "what is the billing period of this campaign for this calendar month",
// synthesizing a hypothetical period when no stored record exists.
package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"naplata/internal/core/domain"
)

// PeriodKind tells where a resolved period came from.
type PeriodKind string

const (
	// PeriodInitial is the first period, carried on the campaign itself.
	PeriodInitial PeriodKind = "initial"
	// PeriodContinuation is a stored continuation record.
	PeriodContinuation PeriodKind = "continuation"
	// PeriodSynthetic is computed for a month with no stored record. It has
	// no identity until staff materialize it into a continuation.
	PeriodSynthetic PeriodKind = "synthetic"
)

// ResolvedPeriod is the billing period of one campaign for one month.
// ContinuationID is set only for PeriodContinuation and is the stable
// identifier to target with mark-paid and unmark actions.
type ResolvedPeriod struct {
	Kind           PeriodKind
	Amount         decimal.Decimal
	Paid           bool
	PaymentDate    *time.Time
	PeriodStart    time.Time
	PeriodEnd      time.Time
	ContinuationID *uuid.UUID
}

// Resolve determines the billing period of c for the given month. It
// returns (nil, nil) when the campaign has no period that month: months
// before the campaign started and months inside a pause dead zone. Callers
// must skip such months entirely.
//
// Stored continuations take precedence over everything except the initial
// month, even when a dead zone nominally covers them: a record staff
// created deliberately is always shown.
func Resolve(c *domain.Campaign, month MonthKey) (*ResolvedPeriod, error) {
	if c.StartDate.IsZero() {
		return nil, &ValidationError{Field: "startDate", Reason: "missing"}
	}
	if c.InitialAmount.Sign() <= 0 {
		return nil, &ValidationError{Field: "initialAmount", Reason: "missing or not positive"}
	}
	if c.PausedAt != nil && c.ResumedAt != nil && c.ResumedAt.Before(*c.PausedAt) {
		return nil, &ValidationError{Field: "resumedAt", Reason: "precedes pausedAt"}
	}

	startMonth := MonthOf(c.StartDate)
	if month.Before(startMonth) {
		return nil, nil
	}
	if month == startMonth {
		return &ResolvedPeriod{
			Kind:        PeriodInitial,
			Amount:      c.InitialAmount,
			Paid:        c.Paid,
			PaymentDate: c.PaymentDate,
			PeriodStart: c.StartDate,
			PeriodEnd:   c.StartDate.AddDate(0, 1, 0),
		}, nil
	}

	if cont, err := continuationFor(c, month); err != nil {
		return nil, err
	} else if cont != nil {
		id := cont.ID
		return &ResolvedPeriod{
			Kind:           PeriodContinuation,
			Amount:         cont.Amount,
			Paid:           cont.Paid,
			PaymentDate:    cont.PaymentDate,
			PeriodStart:    cont.StartDate,
			PeriodEnd:      cont.StartDate.AddDate(0, 1, 0),
			ContinuationID: &id,
		}, nil
	}

	if inDeadZone(c, month) {
		return nil, nil
	}

	return synthesize(c, month), nil
}

// continuationFor finds the stored continuation starting in month. The
// list is not assumed sorted. Two continuations in one month is a data
// entry bug and yields an IntegrityError.
func continuationFor(c *domain.Campaign, month MonthKey) (*domain.Continuation, error) {
	var found *domain.Continuation
	for i := range c.Continuations {
		cont := &c.Continuations[i]
		if MonthOf(cont.StartDate) != month {
			continue
		}
		if found != nil {
			return nil, &IntegrityError{
				CampaignID: c.ID,
				Reason:     "two continuation periods in month " + month.String(),
			}
		}
		found = cont
	}
	return found, nil
}

// inDeadZone reports whether month falls in the campaign's pause window.
// Both pause and resume dates are truncated to their months: the dead zone
// is [month(pausedAt), month(resumedAt)). A campaign paused and never
// resumed has no periods from the pause month on.
func inDeadZone(c *domain.Campaign, month MonthKey) bool {
	if c.PausedAt == nil {
		return false
	}
	pausedMonth := MonthOf(*c.PausedAt)
	if month.Before(pausedMonth) {
		return false
	}
	if c.ResumedAt == nil {
		return true
	}
	return month.Before(MonthOf(*c.ResumedAt))
}

// synthesize computes the hypothetical period for a month with no stored
// record. Periods are anchored at the initial period's expiry
// (startDate + 1 month) and advanced by whole months, so every one keeps
// the start date's day of month. Months spent paused still count toward
// the elapsed-month arithmetic: a campaign resumed after a pause continues
// on the same day anchor as if the pause had not happened, the paused
// months simply produce no period.
func synthesize(c *domain.Campaign, month MonthKey) *ResolvedPeriod {
	anchor := c.StartDate.AddDate(0, 1, 0)
	elapsed := month.MonthsSince(MonthOf(anchor))
	if elapsed < 0 {
		// month is between the start month and the anchor month; resolve to
		// the first post-initial period.
		elapsed = 0
	}
	periodStart := anchor.AddDate(0, elapsed, 0)

	amount := c.EffectiveRecurringAmount()
	if eff := c.RecurringAmountEffectiveDate; eff != nil && periodStart.Before(*eff) {
		amount = c.InitialAmount
	}

	return &ResolvedPeriod{
		Kind:        PeriodSynthetic,
		Amount:      amount,
		PeriodStart: periodStart,
		PeriodEnd:   periodStart.AddDate(0, 1, 0),
	}
}

// HasArrears reports whether any period of c strictly before month is
// unpaid: the initial period or any stored continuation. Synthetic periods
// are never arrears, they have not been billed yet.
func HasArrears(c *domain.Campaign, month MonthKey) bool {
	if !c.Paid && MonthOf(c.StartDate).Before(month) {
		return true
	}
	for i := range c.Continuations {
		cont := &c.Continuations[i]
		if !cont.Paid && MonthOf(cont.StartDate).Before(month) {
			return true
		}
	}
	return false
}
