package db

import (
	"context"

	"gorm.io/gorm"

	gormModels "youthstream/palco/internal/models/gorm"
)

// Migrate brings the schema up to date. The GORM-managed tables use
// AutoMigrate; the donation ledger lives outside the ORM and gets its
// own DDL.
func Migrate(ctx context.Context, orm *gorm.DB) error {
	if err := orm.WithContext(ctx).AutoMigrate(
		&gormModels.User{},
		&gormModels.Profile{},
		&gormModels.StreamGrant{},
		&gormModels.Stream{},
		&gormModels.ChatMessage{},
	); err != nil {
		return err
	}

	ddl := `
		CREATE TABLE IF NOT EXISTS donations (
			id           BIGSERIAL PRIMARY KEY,
			amount_cents BIGINT NOT NULL,
			method       TEXT NOT NULL,
			identifier   TEXT,
			name         TEXT,
			user_id      TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := DB.ExecContext(ctx, ddl)
	return err
}
