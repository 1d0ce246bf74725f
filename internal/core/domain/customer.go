package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod distinguishes how a customer settles invoices.
type PaymentMethod string

const (
	PaymentFiscal  PaymentMethod = "fiscal"
	PaymentInvoice PaymentMethod = "invoice"
)

// Customer is a client of the business. A customer owns its installments,
// hosting records and campaigns; deleting the customer deletes them too.
// Archived customers are hidden from the default listings but keep all of
// their billing history.
type Customer struct {
	ID            uuid.UUID
	Name          string
	Company       string
	Email         string
	Email2        string
	Phone         string
	Phone2        string
	PaymentMethod PaymentMethod
	Domain        string
	Archived      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
