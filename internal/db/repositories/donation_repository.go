package repositories

import (
	"context"

	"youthstream/palco/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// DonationRepository is the sqlx path: the donation ledger is
// append-only and read-heavy, so it skips the ORM.
type DonationRepository struct {
	db *sqlx.DB
}

func NewDonationRepository(db *sqlx.DB) *DonationRepository {
	return &DonationRepository{db}
}

func (r *DonationRepository) Insert(ctx context.Context, d *entities.Donation) error {
	query := `
		INSERT INTO donations (
			amount_cents,
			method,
			identifier,
			name,
			user_id
		)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`

	return r.db.QueryRowxContext(ctx, query,
		d.AmountCents,
		d.Method,
		d.Identifier,
		d.Name,
		d.UserID,
	).Scan(&d.ID, &d.CreatedAt)
}

func (r *DonationRepository) List(ctx context.Context, limit int) ([]entities.Donation, error) {
	query := `
		SELECT id, amount_cents, method, identifier, name, user_id, created_at
		FROM donations
		ORDER BY created_at DESC
		LIMIT $1;
	`

	var donations []entities.Donation
	if err := r.db.SelectContext(ctx, &donations, query, limit); err != nil {
		return nil, err
	}
	return donations, nil
}
