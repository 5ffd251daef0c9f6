package migrations

import "github.com/jmoiron/sqlx"

func init() {
	m.addMigration(&migration{
		version: "20250602094000",
		up:      mig_20250602094000_time_entries_up,
		down:    mig_20250602094000_time_entries_down,
	})
}

func mig_20250602094000_time_entries_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS time_entries (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            project_id UUID NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
            description TEXT NOT NULL DEFAULT '',
            start_time TIME NOT NULL,
            end_time TIME NOT NULL,
            duration INTEGER NOT NULL,
            date DATE NOT NULL,
            billable BOOLEAN NOT NULL DEFAULT FALSE,
            type VARCHAR(10) NOT NULL DEFAULT 'regular',
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_time_entries_project_id ON time_entries(project_id);
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_time_entries_date ON time_entries(date);
    `)
	if err != nil {
		return err
	}

	return nil
}

func mig_20250602094000_time_entries_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS time_entries;`)
	return err
}
