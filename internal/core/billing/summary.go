package billing

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"naplata/internal/core/domain"
)

// CampaignPeriod pairs a campaign with its resolved period for the
// summarized month. Arrears is set when an older period of the same
// campaign is still unpaid.
type CampaignPeriod struct {
	Campaign *domain.Campaign
	Period   ResolvedPeriod
	Arrears  bool
}

// MonthSummary is the per-month report across a set of campaigns.
type MonthSummary struct {
	Month  MonthKey
	Lines  []CampaignPeriod
	Total  decimal.Decimal
	Unpaid decimal.Decimal
}

// SummarizeMonth resolves every campaign against month and aggregates the
// amounts. Campaigns with no applicable period that month (paused, not yet
// started) contribute nothing. The first resolution error aborts the
// summary; a broken campaign record must surface, not skew the totals.
func SummarizeMonth(campaigns []domain.Campaign, month MonthKey) (MonthSummary, error) {
	s := MonthSummary{
		Month:  month,
		Total:  decimal.Zero,
		Unpaid: decimal.Zero,
	}
	for i := range campaigns {
		c := &campaigns[i]
		period, err := Resolve(c, month)
		if err != nil {
			return MonthSummary{}, err
		}
		if period == nil {
			continue
		}
		s.Lines = append(s.Lines, CampaignPeriod{
			Campaign: c,
			Period:   *period,
			Arrears:  HasArrears(c, month),
		})
	}
	s.Total = lo.Reduce(s.Lines, func(acc decimal.Decimal, l CampaignPeriod, _ int) decimal.Decimal {
		return acc.Add(l.Period.Amount)
	}, decimal.Zero)
	s.Unpaid = lo.Reduce(s.Lines, func(acc decimal.Decimal, l CampaignPeriod, _ int) decimal.Decimal {
		if l.Period.Paid {
			return acc
		}
		return acc.Add(l.Period.Amount)
	}, decimal.Zero)
	return s, nil
}
