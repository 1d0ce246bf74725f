package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementMethod records through which account an installment was paid.
type SettlementMethod string

const (
	SettleAccount1 SettlementMethod = "account1"
	SettleAccount2 SettlementMethod = "account2"
	SettleManual   SettlementMethod = "manual"
)

// Installment is a single agreed payment with a due date. Reminders are
// sent on the due date and ReminderSent prevents repeats until staff
// reset it.
type Installment struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Amount           decimal.Decimal
	DueDate          time.Time
	Paid             bool
	PaymentDate      *time.Time
	SettlementMethod SettlementMethod
	ReminderSent     bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Customer is populated by list queries that join the owner.
	Customer *Customer
}
