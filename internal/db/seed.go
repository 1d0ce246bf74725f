package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a few customers with installments, hosting and
// campaigns in different billing states. Intended for local development.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	customers := []struct {
		name    string
		company string
		email   string
		phone   string
		method  string
		domain  string
	}{
		{"Milan Petrović", "Petrović Gradnja", "milan@petrovic-gradnja.rs", "+381601111111", "invoice", "petrovic-gradnja.rs"},
		{"Jelena Stanković", "Salon Jelena", "jelena@salonjelena.rs", "+381602222222", "fiscal", "salonjelena.rs"},
		{"Dragan Ilić", "", "dragan.ilic@example.rs", "", "invoice", ""},
	}

	ids := make([]uuid.UUID, 0, len(customers))
	for _, c := range customers {
		id := uuid.New()
		ids = append(ids, id)
		_, err := db.Exec(ctx, `INSERT INTO customers
    (id, name, company, email, phone, payment_method, domain, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
			id, c.name, c.company, c.email, c.phone, c.method, c.domain)
		if err != nil {
			return err
		}
	}

	today := time.Now().UTC()

	// installments: one due today, one already settled
	for i, due := range []time.Time{today, today.AddDate(0, -1, 0)} {
		_, err := db.Exec(ctx, `INSERT INTO installments
    (id, customer_id, amount, due_date, paid, payment_date, settlement_method, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now(),now()) ON CONFLICT DO NOTHING`,
			uuid.New(), ids[0], fmt.Sprintf("%d.00", 12000+i*3000), due, i == 1, nullableTime(i == 1, due), settlement(i == 1))
		if err != nil {
			return err
		}
	}

	// hosting renewing inside the reminder window
	_, err := db.Exec(ctx, `INSERT INTO hosting
    (id, customer_id, start_date, renewal_date, created_at, updated_at)
VALUES ($1,$2,$3,$4,now(),now()) ON CONFLICT DO NOTHING`,
		uuid.New(), ids[1], today.AddDate(-1, 0, 0), today.AddDate(0, 0, 14))
	if err != nil {
		return err
	}

	// campaign a few months in, with one settled continuation
	campaignID := uuid.New()
	start := today.AddDate(0, -3, 0)
	_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, customer_id, campaign_name, account_name, start_date, initial_amount, recurring_amount,
     paid, payment_date, active, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,true,$8,true,now(),now()) ON CONFLICT DO NOTHING`,
		campaignID, ids[2], "Pretraga - usluge", "dragan-ads", start, "15000.00", "18000.00", start)
	if err != nil {
		return err
	}
	contStart := start.AddDate(0, 1, 0)
	_, err = db.Exec(ctx, `INSERT INTO campaign_continuations
    (id, campaign_id, start_date, amount, paid, payment_date, created_at)
VALUES ($1,$2,$3,$4,true,$5,now()) ON CONFLICT DO NOTHING`,
		uuid.New(), campaignID, contStart, "18000.00", contStart)
	return err
}

func nullableTime(set bool, t time.Time) *time.Time {
	if !set {
		return nil
	}
	return &t
}

func settlement(paid bool) string {
	if paid {
		return "account1"
	}
	return ""
}
