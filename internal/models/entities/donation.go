package entities

import "time"

// Donation is a recorded contribution. The payment itself happens
// outside this system; only the ledger entry lives here.
type Donation struct {
	ID          string    `db:"id"`
	AmountCents int64     `db:"amount_cents"`
	Method      string    `db:"method"`
	Identifier  *string   `db:"identifier"`
	Name        *string   `db:"name"`
	UserID      *string   `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
}
