package httpadapter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"naplata/internal/core/billing"
	"naplata/internal/core/domain"
)

type customerRequest struct {
	Name          string `json:"name" validate:"required"`
	Company       string `json:"company"`
	Email         string `json:"email" validate:"omitempty,email"`
	Email2        string `json:"email2" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Phone2        string `json:"phone2"`
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=fiscal invoice"`
	Domain        string `json:"domain"`
}

type customerResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Company       string    `json:"company,omitempty"`
	Email         string    `json:"email,omitempty"`
	Email2        string    `json:"email2,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Phone2        string    `json:"phone2,omitempty"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	Domain        string    `json:"domain,omitempty"`
	Archived      bool      `json:"archived"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Company:       c.Company,
		Email:         c.Email,
		Email2:        c.Email2,
		Phone:         c.Phone,
		Phone2:        c.Phone2,
		PaymentMethod: string(c.PaymentMethod),
		Domain:        c.Domain,
		Archived:      c.Archived,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func (req customerRequest) toDomain(id uuid.UUID) *domain.Customer {
	return &domain.Customer{
		ID:            id,
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Email2:        req.Email2,
		Phone:         req.Phone,
		Phone2:        req.Phone2,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Domain:        req.Domain,
	}
}

// installmentRequest round-trips the full installment state so an edit
// cannot wipe payment or reminder fields the client did not touch.
type installmentRequest struct {
	CustomerID       uuid.UUID       `json:"customerId" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	DueDate          time.Time       `json:"dueDate" validate:"required"`
	Paid             bool            `json:"paid"`
	PaymentDate      *time.Time      `json:"paymentDate"`
	SettlementMethod string          `json:"settlementMethod" validate:"omitempty,oneof=account1 account2 manual"`
	ReminderSent     bool            `json:"reminderSent"`
}

func (req installmentRequest) toDomain(id uuid.UUID) *domain.Installment {
	return &domain.Installment{
		ID:               id,
		CustomerID:       req.CustomerID,
		Amount:           req.Amount,
		DueDate:          req.DueDate,
		Paid:             req.Paid,
		PaymentDate:      req.PaymentDate,
		SettlementMethod: domain.SettlementMethod(req.SettlementMethod),
		ReminderSent:     req.ReminderSent,
	}
}

type installmentResponse struct {
	ID               uuid.UUID         `json:"id"`
	CustomerID       uuid.UUID         `json:"customerId"`
	Amount           decimal.Decimal   `json:"amount"`
	DueDate          time.Time         `json:"dueDate"`
	Paid             bool              `json:"paid"`
	PaymentDate      *time.Time        `json:"paymentDate,omitempty"`
	SettlementMethod string            `json:"settlementMethod,omitempty"`
	ReminderSent     bool              `json:"reminderSent"`
	Customer         *customerResponse `json:"customer,omitempty"`
}

func toInstallmentResponse(i *domain.Installment) installmentResponse {
	resp := installmentResponse{
		ID:               i.ID,
		CustomerID:       i.CustomerID,
		Amount:           i.Amount,
		DueDate:          i.DueDate,
		Paid:             i.Paid,
		PaymentDate:      i.PaymentDate,
		SettlementMethod: string(i.SettlementMethod),
		ReminderSent:     i.ReminderSent,
	}
	if i.Customer != nil {
		c := toCustomerResponse(i.Customer)
		resp.Customer = &c
	}
	return resp
}

// hostingRequest round-trips reminderSent so an edit does not re-arm a
// reminder that already went out.
type hostingRequest struct {
	CustomerID   uuid.UUID  `json:"customerId" validate:"required"`
	StartDate    *time.Time `json:"startDate"`
	RenewalDate  time.Time  `json:"renewalDate" validate:"required"`
	ReminderSent bool       `json:"reminderSent"`
}

func (req hostingRequest) toDomain(id uuid.UUID) *domain.Hosting {
	return &domain.Hosting{
		ID:           id,
		CustomerID:   req.CustomerID,
		StartDate:    req.StartDate,
		RenewalDate:  req.RenewalDate,
		ReminderSent: req.ReminderSent,
	}
}

type hostingResponse struct {
	ID           uuid.UUID         `json:"id"`
	CustomerID   uuid.UUID         `json:"customerId"`
	StartDate    *time.Time        `json:"startDate,omitempty"`
	RenewalDate  time.Time         `json:"renewalDate"`
	ReminderSent bool              `json:"reminderSent"`
	Customer     *customerResponse `json:"customer,omitempty"`
}

func toHostingResponse(h *domain.Hosting) hostingResponse {
	resp := hostingResponse{
		ID:           h.ID,
		CustomerID:   h.CustomerID,
		StartDate:    h.StartDate,
		RenewalDate:  h.RenewalDate,
		ReminderSent: h.ReminderSent,
	}
	if h.Customer != nil {
		c := toCustomerResponse(h.Customer)
		resp.Customer = &c
	}
	return resp
}

type campaignRequest struct {
	CustomerID                   uuid.UUID        `json:"customerId" validate:"required"`
	CampaignName                 string           `json:"campaignName" validate:"required"`
	AccountName                  string           `json:"accountName"`
	StartDate                    time.Time        `json:"startDate" validate:"required"`
	InitialAmount                decimal.Decimal  `json:"initialAmount" validate:"required"`
	RecurringAmount              *decimal.Decimal `json:"recurringAmount"`
	RecurringAmountEffectiveDate *time.Time       `json:"recurringAmountEffectiveDate"`
}

type continuationResponse struct {
	ID          uuid.UUID       `json:"id"`
	StartDate   time.Time       `json:"startDate"`
	Amount      decimal.Decimal `json:"amount"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"paymentDate,omitempty"`
}

type campaignResponse struct {
	ID                           uuid.UUID              `json:"id"`
	CustomerID                   uuid.UUID              `json:"customerId"`
	CampaignName                 string                 `json:"campaignName"`
	AccountName                  string                 `json:"accountName,omitempty"`
	StartDate                    time.Time              `json:"startDate"`
	InitialAmount                decimal.Decimal        `json:"initialAmount"`
	RecurringAmount              decimal.Decimal        `json:"recurringAmount"`
	RecurringAmountEffectiveDate *time.Time             `json:"recurringAmountEffectiveDate,omitempty"`
	Paid                         bool                   `json:"paid"`
	PaymentDate                  *time.Time             `json:"paymentDate,omitempty"`
	Active                       bool                   `json:"active"`
	PausedAt                     *time.Time             `json:"pausedAt,omitempty"`
	ResumedAt                    *time.Time             `json:"resumedAt,omitempty"`
	Continuations                []continuationResponse `json:"continuations"`
	Customer                     *customerResponse      `json:"customer,omitempty"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	conts := make([]continuationResponse, 0, len(c.Continuations))
	for _, n := range c.Continuations {
		conts = append(conts, continuationResponse{
			ID:          n.ID,
			StartDate:   n.StartDate,
			Amount:      n.Amount,
			Paid:        n.Paid,
			PaymentDate: n.PaymentDate,
		})
	}
	resp := campaignResponse{
		ID:                           c.ID,
		CustomerID:                   c.CustomerID,
		CampaignName:                 c.CampaignName,
		AccountName:                  c.AccountName,
		StartDate:                    c.StartDate,
		InitialAmount:                c.InitialAmount,
		RecurringAmount:              c.RecurringAmount,
		RecurringAmountEffectiveDate: c.RecurringAmountEffectiveDate,
		Paid:                         c.Paid,
		PaymentDate:                  c.PaymentDate,
		Active:                       c.Active,
		PausedAt:                     c.PausedAt,
		ResumedAt:                    c.ResumedAt,
		Continuations:                conts,
	}
	if c.Customer != nil {
		cu := toCustomerResponse(c.Customer)
		resp.Customer = &cu
	}
	return resp
}

type periodResponse struct {
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Paid           bool            `json:"paid"`
	PaymentDate    *time.Time      `json:"paymentDate,omitempty"`
	PeriodStart    time.Time       `json:"periodStart"`
	PeriodEnd      time.Time       `json:"periodEnd"`
	ContinuationID *uuid.UUID      `json:"continuationId,omitempty"`
}

type billingLineResponse struct {
	Campaign campaignResponse `json:"campaign"`
	Period   periodResponse   `json:"period"`
	Arrears  bool             `json:"arrears"`
}

type billingMonthResponse struct {
	Month  string                `json:"month"`
	Lines  []billingLineResponse `json:"lines"`
	Total  decimal.Decimal       `json:"total"`
	Unpaid decimal.Decimal       `json:"unpaid"`
}

func toBillingMonthResponse(s *billing.MonthSummary) billingMonthResponse {
	lines := make([]billingLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, billingLineResponse{
			Campaign: toCampaignResponse(l.Campaign),
			Period: periodResponse{
				Kind:           string(l.Period.Kind),
				Amount:         l.Period.Amount,
				Paid:           l.Period.Paid,
				PaymentDate:    l.Period.PaymentDate,
				PeriodStart:    l.Period.PeriodStart,
				PeriodEnd:      l.Period.PeriodEnd,
				ContinuationID: l.Period.ContinuationID,
			},
			Arrears: l.Arrears,
		})
	}
	return billingMonthResponse{
		Month:  s.Month.String(),
		Lines:  lines,
		Total:  s.Total,
		Unpaid: s.Unpaid,
	}
}

type reminderReportResponse struct {
	Sent    int                      `json:"sent"`
	Failed  int                      `json:"failed"`
	Results []reminderResultResponse `json:"results"`
}

type reminderResultResponse struct {
	ID       uuid.UUID `json:"id"`
	Customer string    `json:"customer"`
	Email    string    `json:"email"`
	Success  bool      `json:"success"`
	Error    string    `json:"error,omitempty"`
}
