package migrations

import "github.com/jmoiron/sqlx"

func init() {
	m.addMigration(&migration{
		version: "20250602091000",
		up:      mig_20250602091000_members_up,
		down:    mig_20250602091000_members_down,
	})
}

func mig_20250602091000_members_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS members (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            name VARCHAR(255) NOT NULL,
            email VARCHAR(255) NOT NULL,
            password_hash VARCHAR(255),
            firebase_uid VARCHAR(255),
            picture VARCHAR(512),
            provider VARCHAR(20) NOT NULL DEFAULT 'email',
            email_verified BOOLEAN NOT NULL DEFAULT FALSE,
            rate NUMERIC(10,2),
            cost NUMERIC(10,2),
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            UNIQUE(email)
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_members_firebase_uid
        ON members(firebase_uid) WHERE firebase_uid IS NOT NULL;
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_members_email ON members(email);
    `)
	if err != nil {
		return err
	}

	return nil
}

func mig_20250602091000_members_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS members;`)
	return err
}
