package content

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// sqliteSchema is the layout of a SQLite catalog. position carries the
// navigation order.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    place TEXT NOT NULL DEFAULT '',
    year TEXT NOT NULL DEFAULT '',
    logline TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS images (
    project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    src TEXT NOT NULL,
    caption TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (project_id, position)
);
`

// LoadSQLite reads a catalog from the SQLite file at path. The connection
// is query-only; the file is never modified.
func LoadSQLite(path string) (*Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("accessing database: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	rows, err := db.Query(`SELECT id, title, place, year, logline, description
		FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	var projects []Project
	byID := make(map[string]int)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Place, &p.Year, &p.Logline, &p.Description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		byID[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()

	imgRows, err := db.Query(`SELECT project_id, src, caption FROM images ORDER BY project_id, position`)
	if err != nil {
		return nil, fmt.Errorf("querying images: %w", err)
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var projectID string
		var img Image
		if err := imgRows.Scan(&projectID, &img.Src, &img.Caption); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		i, ok := byID[projectID]
		if !ok {
			continue
		}
		projects[i].Images = append(projects[i].Images, img)
	}
	if err := imgRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating images: %w", err)
	}

	return NewCatalog(projects)
}

// ExportSQLite writes projects into a new SQLite file at path. It refuses
// to overwrite an existing file. The database is built next to path and
// renamed into place on success, so a failed export leaves nothing behind.
func ExportSQLite(path string, projects []Project) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("database %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale %s: %w", tmp, err)
	}
	if err := writeSQLite(tmp, projects); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("moving database into place: %w", err)
	}
	return nil
}

// writeSQLite creates the schema in a fresh file and inserts projects in
// one transaction. The connection is closed before it returns.
func writeSQLite(path string, projects []Project) error {
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for i, p := range projects {
		if _, err := tx.Exec(`INSERT INTO projects (id, position, title, place, year, logline, description)
			VALUES (?, ?, ?, ?, ?, ?, ?)`, p.ID, i, p.Title, p.Place, p.Year, p.Logline, p.Description); err != nil {
			return fmt.Errorf("inserting project %q: %w", p.ID, err)
		}
		for j, img := range p.Images {
			if _, err := tx.Exec(`INSERT INTO images (project_id, position, src, caption) VALUES (?, ?, ?, ?)`,
				p.ID, j, img.Src, img.Caption); err != nil {
				return fmt.Errorf("inserting image %d of %q: %w", j, p.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return db.Close()
}
