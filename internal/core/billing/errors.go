package billing

import (
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a campaign field the resolver cannot work with.
// The resolver fails fast instead of guessing a default.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid campaign: field %s: %s", e.Field, e.Reason)
}

// IntegrityError reports contradictory stored data, such as two
// continuations claiming the same month. It indicates an upstream data
// entry bug and must surface to the caller rather than being resolved by
// picking one of the records.
type IntegrityError struct {
	CampaignID uuid.UUID
	Reason     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("campaign %s: inconsistent data: %s", e.CampaignID, e.Reason)
}
