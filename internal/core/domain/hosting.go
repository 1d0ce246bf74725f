package domain

import (
	"time"

	"github.com/google/uuid"
)

// Hosting is an annual hosting engagement. Renewal reminders go out when
// RenewalDate is within the lookahead window.
type Hosting struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	StartDate    *time.Time
	RenewalDate  time.Time
	ReminderSent bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer *Customer
}
