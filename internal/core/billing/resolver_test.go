package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"naplata/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateptr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func testCampaign() domain.Campaign {
	return domain.Campaign{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		CampaignName:    "search brand",
		StartDate:       date(2025, time.January, 15),
		InitialAmount:   amt(1000),
		RecurringAmount: amt(1000),
		Active:          true,
	}
}

func TestResolveInitialMonth(t *testing.T) {
	c := testCampaign()
	c.Paid = true
	c.PaymentDate = dateptr(2025, time.January, 20)
	// neither continuations nor a pause covering the start month change the
	// initial period
	c.Continuations = []domain.Continuation{{
		ID:        uuid.New(),
		StartDate: date(2025, time.February, 15),
		Amount:    amt(1200),
	}}
	c.PausedAt = dateptr(2025, time.January, 1)
	c.ResumedAt = dateptr(2025, time.March, 1)

	p, err := Resolve(&c, MonthKey{2025, time.January})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodInitial, p.Kind)
	require.True(t, p.Amount.Equal(amt(1000)))
	require.True(t, p.Paid)
	require.Equal(t, date(2025, time.January, 15), p.PeriodStart)
	require.Equal(t, date(2025, time.February, 15), p.PeriodEnd)
	require.Nil(t, p.ContinuationID)
}

func TestResolveBeforeStartMonth(t *testing.T) {
	c := testCampaign()
	p, err := Resolve(&c, MonthKey{2024, time.December})
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestResolveStoredContinuation(t *testing.T) {
	c := testCampaign()
	id := uuid.New()
	// unsorted on purpose; the resolver must not assume order
	c.Continuations = []domain.Continuation{
		{ID: uuid.New(), StartDate: date(2025, time.April, 15), Amount: amt(1500)},
		{ID: id, StartDate: date(2025, time.March, 15), Amount: amt(1300), Paid: true, PaymentDate: dateptr(2025, time.March, 17)},
	}

	p, err := Resolve(&c, MonthKey{2025, time.March})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodContinuation, p.Kind)
	require.True(t, p.Amount.Equal(amt(1300)))
	require.True(t, p.Paid)
	require.Equal(t, date(2025, time.March, 15), p.PeriodStart)
	require.Equal(t, date(2025, time.April, 15), p.PeriodEnd)
	require.NotNil(t, p.ContinuationID)
	require.Equal(t, id, *p.ContinuationID)
}

func TestResolveContinuationBeatsDeadZone(t *testing.T) {
	c := testCampaign()
	c.PausedAt = dateptr(2025, time.March, 1)
	c.ResumedAt = dateptr(2025, time.June, 1)
	id := uuid.New()
	c.Continuations = []domain.Continuation{
		{ID: id, StartDate: date(2025, time.April, 15), Amount: amt(999)},
	}

	p, err := Resolve(&c, MonthKey{2025, time.April})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodContinuation, p.Kind)
	require.Equal(t, id, *p.ContinuationID)
}

func TestResolveDuplicateContinuationMonth(t *testing.T) {
	c := testCampaign()
	c.Continuations = []domain.Continuation{
		{ID: uuid.New(), StartDate: date(2025, time.March, 1), Amount: amt(1000)},
		{ID: uuid.New(), StartDate: date(2025, time.March, 20), Amount: amt(1100)},
	}

	_, err := Resolve(&c, MonthKey{2025, time.March})
	var ie *IntegrityError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, c.ID, ie.CampaignID)
}

func TestResolveDeadZone(t *testing.T) {
	c := testCampaign()
	c.PausedAt = dateptr(2025, time.March, 1)
	c.ResumedAt = dateptr(2025, time.June, 1)

	for _, m := range []time.Month{time.March, time.April, time.May} {
		p, err := Resolve(&c, MonthKey{2025, m})
		require.NoError(t, err)
		require.Nil(t, p, "month %s should have no period", m)
	}

	p, err := Resolve(&c, MonthKey{2025, time.June})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodSynthetic, p.Kind)
}

func TestResolvePausedNeverResumed(t *testing.T) {
	c := testCampaign()
	c.Active = false
	c.PausedAt = dateptr(2025, time.April, 10)

	p, err := Resolve(&c, MonthKey{2025, time.March})
	require.NoError(t, err)
	require.NotNil(t, p)

	for _, m := range []time.Month{time.April, time.May, time.December} {
		p, err = Resolve(&c, MonthKey{2025, m})
		require.NoError(t, err)
		require.Nil(t, p, "month %s should have no period", m)
	}
}

// Months spent paused still count toward the elapsed-month arithmetic that
// anchors synthetic periods: after a resume the period for month M starts
// on the same day of month it would have without the pause. This pins the
// deliberate decision, do not "fix" it to contiguous continuation without
// migrating stored data.
func TestResolvePausedMonthsCountTowardAnchor(t *testing.T) {
	c := testCampaign()
	c.PausedAt = dateptr(2025, time.March, 1)
	c.ResumedAt = dateptr(2025, time.June, 1)

	p, err := Resolve(&c, MonthKey{2025, time.June})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, date(2025, time.June, 15), p.PeriodStart)
	require.Equal(t, date(2025, time.July, 15), p.PeriodEnd)

	p, err = Resolve(&c, MonthKey{2025, time.September})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, date(2025, time.September, 15), p.PeriodStart)
}

func TestResolveAmountCutover(t *testing.T) {
	c := testCampaign()
	c.StartDate = date(2025, time.January, 1)
	c.InitialAmount = amt(1000)
	c.RecurringAmount = amt(1500)
	c.RecurringAmountEffectiveDate = dateptr(2025, time.June, 1)

	p, err := Resolve(&c, MonthKey{2025, time.May})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, date(2025, time.May, 1), p.PeriodStart)
	require.True(t, p.Amount.Equal(amt(1000)), "period before the cutover keeps the initial amount")

	p, err = Resolve(&c, MonthKey{2025, time.June})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, date(2025, time.June, 1), p.PeriodStart)
	require.True(t, p.Amount.Equal(amt(1500)), "period on the cutover uses the recurring amount")
}

func TestResolveNoCutoverDate(t *testing.T) {
	c := testCampaign()
	c.RecurringAmount = amt(1500)

	p, err := Resolve(&c, MonthKey{2025, time.February})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodSynthetic, p.Kind)
	require.True(t, p.Amount.Equal(amt(1500)))
	require.False(t, p.Paid)
	require.Nil(t, p.PaymentDate)
}

func TestResolveRecurringAmountDefaults(t *testing.T) {
	c := testCampaign()
	c.RecurringAmount = decimal.Zero

	p, err := Resolve(&c, MonthKey{2025, time.March})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, p.Amount.Equal(amt(1000)))
}

// A start late in a long month makes the expiry anchor normalize into the
// month after next (Jan 31 + 1 month is Mar 3). Querying the in-between
// month clamps the elapsed count at zero and resolves to the first
// post-initial period.
func TestResolveMonthBeforeAnchorClamps(t *testing.T) {
	c := testCampaign()
	c.StartDate = date(2025, time.January, 31)

	p, err := Resolve(&c, MonthKey{2025, time.February})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.Equal(t, PeriodSynthetic, p.Kind)
	require.Equal(t, date(2025, time.March, 3), p.PeriodStart)
}

func TestResolveIdempotent(t *testing.T) {
	c := testCampaign()
	c.RecurringAmount = amt(1200)
	c.Continuations = []domain.Continuation{
		{ID: uuid.New(), StartDate: date(2025, time.February, 15), Amount: amt(1200), Paid: true},
	}

	for _, m := range []MonthKey{{2025, time.January}, {2025, time.February}, {2025, time.July}} {
		a, err := Resolve(&c, m)
		require.NoError(t, err)
		b, err := Resolve(&c, m)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestResolveValidation(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*domain.Campaign)
		field string
	}{
		{"missing start date", func(c *domain.Campaign) { c.StartDate = time.Time{} }, "startDate"},
		{"missing initial amount", func(c *domain.Campaign) { c.InitialAmount = decimal.Zero }, "initialAmount"},
		{"negative initial amount", func(c *domain.Campaign) { c.InitialAmount = amt(-5) }, "initialAmount"},
		{"resume before pause", func(c *domain.Campaign) {
			c.PausedAt = dateptr(2025, time.June, 1)
			c.ResumedAt = dateptr(2025, time.March, 1)
		}, "resumedAt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCampaign()
			tt.mut(&c)
			_, err := Resolve(&c, MonthKey{2025, time.July})
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestHasArrears(t *testing.T) {
	c := testCampaign()
	c.Paid = true
	c.Continuations = []domain.Continuation{
		{ID: uuid.New(), StartDate: date(2025, time.February, 15), Amount: amt(1000), Paid: true},
		{ID: uuid.New(), StartDate: date(2025, time.March, 15), Amount: amt(1000), Paid: false},
	}

	require.False(t, HasArrears(&c, MonthKey{2025, time.March}), "the unpaid period is not before March")
	require.True(t, HasArrears(&c, MonthKey{2025, time.April}))
	require.True(t, HasArrears(&c, MonthKey{2025, time.December}))

	// unpaid initial period counts too
	c2 := testCampaign()
	require.False(t, HasArrears(&c2, MonthKey{2025, time.January}))
	require.True(t, HasArrears(&c2, MonthKey{2025, time.February}))
}
