package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/bordermap/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.MapStore = (*Store)(nil)

// Store reads and writes map documents kept in SQLite files.
type Store struct{}

// NewStore creates a SQLite map store.
func NewStore() *Store {
	return &Store{}
}

// openDB opens the database at path and applies pending migrations.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := migrate(ctx, db, migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// migrate runs all pending migrations.
func migrate(ctx context.Context, db *sql.DB, fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// Exists reports whether a file is present at path.
func (s *Store) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Save replaces the document stored at path.
func (s *Store) Save(ctx context.Context, path string, snap *domain.MapSnapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	db, err := openDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := writeSnapshot(ctx, tx, snap); err != nil {
		return err
	}
	return tx.Commit()
}

func writeSnapshot(ctx context.Context, tx *sql.Tx, snap *domain.MapSnapshot) error {
	for _, table := range []string{"country_border_refs", "countries", "border_parts", "country_borders", "border_points", "document"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO document (id, reference_image) VALUES (?, ?)",
		snap.DocumentID, snap.ReferenceImage,
	); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}

	for i, p := range snap.Points {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO border_points (seq, number, x, y, is_endpoint) VALUES (?, ?, ?, ?, ?)",
			i, p.Number, p.X, p.Y, boolToInt(p.IsEndpoint),
		); err != nil {
			return fmt.Errorf("saving point %d: %w", p.Number, err)
		}
	}

	for i, b := range snap.Borders {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO country_borders (seq, a, b) VALUES (?, ?, ?)",
			i, b.Endpoints[0], b.Endpoints[1],
		); err != nil {
			return fmt.Errorf("saving border %s: %w", b.Endpoints, err)
		}
		for j, part := range b.Parts {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO border_parts (border_seq, seq, a, b) VALUES (?, ?, ?, ?)",
				i, j, part.PointNumbers[0], part.PointNumbers[1],
			); err != nil {
				return fmt.Errorf("saving part %s of border %s: %w", part.PointNumbers, b.Endpoints, err)
			}
		}
	}

	for i, c := range snap.Countries {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO countries (seq, name) VALUES (?, ?)", i, c.Name,
		); err != nil {
			return fmt.Errorf("saving country %q: %w", c.Name, err)
		}
		for j, k := range c.Borders {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO country_border_refs (country_seq, seq, a, b) VALUES (?, ?, ?, ?)",
				i, j, k[0], k[1],
			); err != nil {
				return fmt.Errorf("saving border %s of country %q: %w", k, c.Name, err)
			}
		}
	}

	return nil
}

// Load reads the document stored at path. Files that are not bordermap
// databases fail with domain.ErrCorruptData.
func (s *Store) Load(ctx context.Context, path string) (*domain.MapSnapshot, error) {
	exists, err := s.Exists(ctx, path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}

	db, err := openDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, domain.ErrCorruptData)
	}
	defer db.Close()

	snap, err := readSnapshot(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, domain.ErrCorruptData)
	}
	return snap, nil
}

func readSnapshot(ctx context.Context, db *sql.DB) (*domain.MapSnapshot, error) {
	snap := &domain.MapSnapshot{}

	err := db.QueryRowContext(ctx, "SELECT id, reference_image FROM document LIMIT 1").
		Scan(&snap.DocumentID, &snap.ReferenceImage)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	if err := readPoints(ctx, db, snap); err != nil {
		return nil, err
	}
	if err := readBorders(ctx, db, snap); err != nil {
		return nil, err
	}
	if err := readCountries(ctx, db, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func readPoints(ctx context.Context, db *sql.DB, snap *domain.MapSnapshot) error {
	rows, err := db.QueryContext(ctx, "SELECT number, x, y, is_endpoint FROM border_points ORDER BY seq")
	if err != nil {
		return fmt.Errorf("querying points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var number, endpoint int64
		var p domain.BorderPoint
		if err := rows.Scan(&number, &p.X, &p.Y, &endpoint); err != nil {
			return fmt.Errorf("scanning point: %w", err)
		}
		if p.Number, err = pointNumber(number); err != nil {
			return err
		}
		p.IsEndpoint = endpoint != 0
		snap.Points = append(snap.Points, p)
	}
	return rows.Err()
}

func readBorders(ctx context.Context, db *sql.DB, snap *domain.MapSnapshot) error {
	keys, err := readPairs(ctx, db, "SELECT seq, a, b FROM country_borders ORDER BY seq")
	if err != nil {
		return fmt.Errorf("querying borders: %w", err)
	}
	parts, err := readGroupedPairs(ctx, db, "SELECT border_seq, a, b FROM border_parts ORDER BY border_seq, seq")
	if err != nil {
		return fmt.Errorf("querying parts: %w", err)
	}

	for _, k := range keys {
		border := domain.CountryBorder{Endpoints: k.key}
		for _, pk := range parts[k.seq] {
			border.Parts = append(border.Parts, domain.BorderPart{PointNumbers: pk})
		}
		snap.Borders = append(snap.Borders, border)
	}
	return nil
}

func readCountries(ctx context.Context, db *sql.DB, snap *domain.MapSnapshot) error {
	refs, err := readGroupedPairs(ctx, db, "SELECT country_seq, a, b FROM country_border_refs ORDER BY country_seq, seq")
	if err != nil {
		return fmt.Errorf("querying country borders: %w", err)
	}

	rows, err := db.QueryContext(ctx, "SELECT seq, name FROM countries ORDER BY seq")
	if err != nil {
		return fmt.Errorf("querying countries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		var c domain.Country
		if err := rows.Scan(&seq, &c.Name); err != nil {
			return fmt.Errorf("scanning country: %w", err)
		}
		c.Borders = refs[seq]
		snap.Countries = append(snap.Countries, c)
	}
	return rows.Err()
}

type seqKey struct {
	seq int64
	key domain.EdgeKey
}

func readPairs(ctx context.Context, db *sql.DB, query string) ([]seqKey, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []seqKey
	for rows.Next() {
		var seq, a, b int64
		if err := rows.Scan(&seq, &a, &b); err != nil {
			return nil, err
		}
		key, err := edgeKey(a, b)
		if err != nil {
			return nil, err
		}
		out = append(out, seqKey{seq: seq, key: key})
	}
	return out, rows.Err()
}

func readGroupedPairs(ctx context.Context, db *sql.DB, query string) (map[int64][]domain.EdgeKey, error) {
	pairs, err := readPairs(ctx, db, query)
	if err != nil {
		return nil, err
	}
	out := make(map[int64][]domain.EdgeKey)
	for _, p := range pairs {
		out[p.seq] = append(out[p.seq], p.key)
	}
	return out, nil
}

func edgeKey(a, b int64) (domain.EdgeKey, error) {
	na, err := pointNumber(a)
	if err != nil {
		return domain.EdgeKey{}, err
	}
	nb, err := pointNumber(b)
	if err != nil {
		return domain.EdgeKey{}, err
	}
	return domain.NewEdgeKey(na, nb), nil
}

func pointNumber(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("point number %d out of range", v)
	}
	return uint32(v), nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
