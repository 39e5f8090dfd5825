package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// migrationLockKey serializes migration runs across registry instances
// sharing one database. Arbitrary but fixed for this service.
const migrationLockKey = 829301472

var scriptNameRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// script is one V<version>__<name>.sql file. The checksum pins the applied
// content so a later edit of an applied file fails loudly.
type script struct {
	version  int64
	name     string
	filename string
	sql      string
	checksum string
}

// Runner applies pending SQL scripts from Dir in version order, recording
// each in hr_schema_history. An empty Dir falls back to a migrations/
// directory next to the executable.
type Runner struct {
	Dir string
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	dir := strings.TrimSpace(r.Dir)
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return err
		}
		dir = filepath.Join(filepath.Dir(exe), "migrations")
	}

	scripts, err := discover(dir)
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return nil
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS hr_schema_history (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, migrationLockKey); err != nil {
		return err
	}
	defer func() {
		_, _ = db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, migrationLockKey)
	}()

	applied, err := appliedChecksums(ctx, db)
	if err != nil {
		return err
	}

	for _, s := range scripts {
		if sum, ok := applied[s.version]; ok {
			if sum != s.checksum {
				return fmt.Errorf("migration %d (%s) changed after being applied", s.version, s.name)
			}
			continue
		}
		if err := apply(ctx, db, s); err != nil {
			return err
		}
	}
	return nil
}

// discover reads Dir and returns its scripts sorted by version. A missing
// directory is treated as "nothing to run".
func discover(dir string) ([]script, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	scripts := make([]script, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := scriptNameRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		version, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad migration version in %s", e.Name())
		}

		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		body := strings.TrimSpace(string(b))
		if body == "" {
			return nil, fmt.Errorf("empty migration file %s", e.Name())
		}

		sum := sha256.Sum256([]byte(body))
		scripts = append(scripts, script{
			version:  version,
			name:     m[2],
			filename: e.Name(),
			sql:      body,
			checksum: hex.EncodeToString(sum[:]),
		})
	}

	sort.Slice(scripts, func(i, j int) bool { return scripts[i].version < scripts[j].version })
	for i := 1; i < len(scripts); i++ {
		if scripts[i].version == scripts[i-1].version {
			return nil, fmt.Errorf("duplicate migration version %d", scripts[i].version)
		}
	}
	return scripts, nil
}

func appliedChecksums(ctx context.Context, db *sql.DB) (map[int64]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT version, checksum FROM hr_schema_history`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]string{}
	for rows.Next() {
		var version int64
		var checksum string
		if err := rows.Scan(&version, &checksum); err != nil {
			return nil, err
		}
		out[version] = checksum
	}
	return out, rows.Err()
}

func apply(ctx context.Context, db *sql.DB, s script) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, s.sql); err != nil {
		return fmt.Errorf("apply %s: %w", s.filename, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO hr_schema_history (version, name, checksum) VALUES ($1, $2, $3)`,
		s.version, s.name, s.checksum,
	); err != nil {
		return err
	}
	return tx.Commit()
}
