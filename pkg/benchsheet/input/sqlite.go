package input

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/models"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads every user table of a SQLite database as a section, in
// creation order. Column names become row keys.
func LoadSQLite(path string) (models.Payload, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return models.Payload{}, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return models.Payload{}, malformed(FormatSQLite, err)
	}
	defer db.Close()

	tables, err := sqliteTables(db)
	if err != nil {
		return models.Payload{}, malformed(FormatSQLite, err)
	}

	var p models.Payload
	for _, table := range tables {
		rows, err := sqliteRows(db, table)
		if err != nil {
			return models.Payload{}, malformed(FormatSQLite, fmt.Errorf("table %q: %w", table, err))
		}
		p.Sections = append(p.Sections, models.Section{Key: table, Rows: rows})
	}
	return p, nil
}

func sqliteTables(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func sqliteRows(db *sql.DB, table string) ([]models.RawRow, error) {
	rows, err := db.Query(`SELECT * FROM ` + quoteIdent(table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []models.RawRow{}
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		rec := make(models.RawRow, len(cols))
		for i, c := range cols {
			rec[c] = sqliteValue(vals[i])
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func sqliteValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly)
		}
		return t.Format(time.RFC3339)
	default:
		return t
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
