package migrations

import "github.com/jmoiron/sqlx"

func init() {
	m.addMigration(&migration{
		version: "20250602094500",
		up:      mig_20250602094500_pomodoro_sessions_up,
		down:    mig_20250602094500_pomodoro_sessions_down,
	})
}

func mig_20250602094500_pomodoro_sessions_up(tx *sqlx.Tx) error {
	_, err := tx.Exec(`
        CREATE TABLE IF NOT EXISTS pomodoro_sessions (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            member_id UUID NOT NULL REFERENCES members(id) ON DELETE CASCADE,
            start_time TIMESTAMP WITH TIME ZONE NOT NULL,
            end_time TIMESTAMP WITH TIME ZONE NOT NULL,
            duration INTEGER NOT NULL,
            break_duration INTEGER NOT NULL DEFAULT 0,
            cycles INTEGER NOT NULL DEFAULT 1,
            notes TEXT,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
        );
    `)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
        CREATE INDEX IF NOT EXISTS idx_pomodoro_sessions_member_id ON pomodoro_sessions(member_id);
    `)
	if err != nil {
		return err
	}

	return nil
}

func mig_20250602094500_pomodoro_sessions_down(tx *sqlx.Tx) error {
	_, err := tx.Exec(`DROP TABLE IF EXISTS pomodoro_sessions;`)
	return err
}
