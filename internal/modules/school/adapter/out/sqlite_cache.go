package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"nshub/internal/modules/school/domain"
	schoolout "nshub/internal/modules/school/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSchoolCache keeps directory answers in a local database so school
// resolution survives portal directory outages.
type SQLiteSchoolCache struct {
	db *sql.DB
}

func NewSQLiteSchoolCache(dbPath string) (schoolout.Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteSchoolCache{db: db}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteSchoolCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS schools (
  id INTEGER PRIMARY KEY,
  short_name TEXT NOT NULL,
  name TEXT NOT NULL
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create schools table: %w", err)
	}
	return nil
}

func (c *SQLiteSchoolCache) Lookup(ctx context.Context, name string) ([]domain.School, error) {
	const query = `
SELECT id, short_name, name FROM schools
WHERE short_name LIKE '%' || ? || '%' OR name LIKE '%' || ? || '%'
ORDER BY id;
`
	rows, err := c.db.QueryContext(ctx, query, name, name)
	if err != nil {
		return nil, fmt.Errorf("lookup schools: %w", err)
	}
	defer rows.Close()

	var schools []domain.School
	for rows.Next() {
		var s domain.School
		if err := rows.Scan(&s.ID, &s.ShortName, &s.Name); err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		schools = append(schools, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schools: %w", err)
	}
	return schools, nil
}

func (c *SQLiteSchoolCache) Upsert(ctx context.Context, schools []domain.School) error {
	const stmt = `
INSERT INTO schools (id, short_name, name)
VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  short_name=excluded.short_name,
  name=excluded.name;
`
	for _, s := range schools {
		if _, err := c.db.ExecContext(ctx, stmt, s.ID, s.ShortName, s.Name); err != nil {
			return fmt.Errorf("upsert school %d: %w", s.ID, err)
		}
	}
	return nil
}
