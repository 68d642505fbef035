// internal/grammar/sqlite.go
//
// Grammar rows stored in a SQLite database.
//
// Expected schema:
//
//	CREATE TABLE cfg_rows (
//	    ord INTEGER NOT NULL,  -- row order, also reported as the line number
//	    lhs TEXT    NOT NULL,
//	    a   TEXT    NOT NULL,  -- word, or left symbol of a binary rule
//	    b   TEXT               -- right symbol; NULL for terminal rules
//	);
//
// The database is opened read-only; grammars are never written back.

package grammar

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LoadSQLite reads rows from the cfg_rows table of the database at path.
func LoadSQLite(ctx context.Context, path string, opts ...LoadOption) (*Table, error) {
	db, err := openReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := ReadSQL(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t, err := Load(rows, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// openReadOnly opens a SQLite file without creating it.
func openReadOnly(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return db, nil
}

// ReadSQL reads grammar rows from cfg_rows in ord order.
func ReadSQL(ctx context.Context, db *sql.DB) ([]Row, error) {
	rs, err := db.QueryContext(ctx, `SELECT ord, lhs, a, b FROM cfg_rows ORDER BY ord`)
	if err != nil {
		return nil, fmt.Errorf("query cfg_rows: %w", err)
	}
	defer rs.Close()

	var out []Row
	for rs.Next() {
		var (
			ord    int
			lhs, a string
			b      sql.NullString
		)
		if err := rs.Scan(&ord, &lhs, &a, &b); err != nil {
			return nil, err
		}
		fields := []string{lhs, a}
		if b.Valid {
			fields = append(fields, b.String)
		}
		out = append(out, Row{Line: ord, Fields: fields})
	}
	return out, rs.Err()
}
