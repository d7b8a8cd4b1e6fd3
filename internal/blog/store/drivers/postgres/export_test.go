package postgres

import "database/sql"

// ExecForTest runs raw SQL against the store's pool.
func ExecForTest(s *Store, q string) (sql.Result, error) {
	return s.db.Exec(q)
}
