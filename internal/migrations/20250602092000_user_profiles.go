package migrations

import "github.com/jmoiron/sqlx"

func init() {
	m.addMigration(&migration{
		version: "20250602092000",
		up:      mig_20250602092000_user_profiles_up,
		down:    mig_20250602092000_user_profiles_down,
	})
}

func mig_20250602092000_user_profiles_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS user_profiles (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
            first_name VARCHAR(100) NOT NULL DEFAULT '',
            last_name VARCHAR(100) NOT NULL DEFAULT '',
            phone VARCHAR(20) NOT NULL DEFAULT '',
            job_title VARCHAR(100) NOT NULL DEFAULT '',
            company VARCHAR(150) NOT NULL DEFAULT '',
            bio TEXT NOT NULL DEFAULT '',
            location VARCHAR(150) NOT NULL DEFAULT '',
            website VARCHAR(255) NOT NULL DEFAULT '',
            timezone VARCHAR(100) NOT NULL DEFAULT '',
            avatar VARCHAR(255) NOT NULL DEFAULT '',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            UNIQUE(member_id)
        );
    `)
	return err
}

func mig_20250602092000_user_profiles_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS user_profiles;`)
	return err
}
