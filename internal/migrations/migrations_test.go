package migrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateMigrationFailsCleanlyWhenFileCannotBeCreated(t *testing.T) {
	tpl, err := os.ReadFile("template.txt")
	require.NoError(t, err)

	// CreateMigration resolves paths relative to the repo root
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "internal", "migrations")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.txt"), tpl, 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// A separator in the title points os.Create at a directory that does
	// not exist; the call must surface the error instead of panicking.
	err = m.CreateMigration("nonexistent/subdir")
	require.Error(t, err)
}
