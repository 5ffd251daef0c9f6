package migrations

import "github.com/jmoiron/sqlx"

func init() {
	m.addMigration(&migration{
		version: "20250602091500",
		up:      mig_20250602091500_auth_tokens_up,
		down:    mig_20250602091500_auth_tokens_down,
	})
}

func mig_20250602091500_auth_tokens_up(tx *sqlx.Tx) error {
	// One token row per member. Re-login rotates the row in place.
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS auth_tokens (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
            token VARCHAR(255) NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            UNIQUE(member_id),
            UNIQUE(token)
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_auth_tokens_token ON auth_tokens(token);
    `)
	if err != nil {
		return err
	}

	return nil
}

func mig_20250602091500_auth_tokens_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS auth_tokens;`)
	return err
}
