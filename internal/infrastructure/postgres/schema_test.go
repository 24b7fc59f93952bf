package postgres

import (
	"os"
	"strings"
	"testing"
)

// Every identifier in userColumns must be a column the initial migration
// actually creates on users, otherwise each auth query dies with an
// undefined-column error on a fresh database.
func TestUserColumnsMatchMigration(t *testing.T) {
	ddl := usersTableDDL(t)

	for _, col := range strings.Split(userColumns, ", ") {
		col = strings.TrimSpace(col)
		if !strings.Contains(ddl, col) {
			t.Errorf("users migration does not define column %q", col)
		}
	}
}

func usersTableDDL(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../../db/migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	sql := string(raw)

	start := strings.Index(sql, "CREATE TABLE IF NOT EXISTS users (")
	if start < 0 {
		t.Fatal("users table missing from initial migration")
	}
	end := strings.Index(sql[start:], ");")
	if end < 0 {
		t.Fatal("users table DDL is unterminated")
	}
	return sql[start : start+end]
}
