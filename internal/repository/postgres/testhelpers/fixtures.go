package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetEntityIDByCode returns the internal ID for an entity given its type and code
func GetEntityIDByCode(db *sql.DB, abbr, code string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		SELECT e.id
		FROM travel_entity e
		JOIN travel_entity_type t ON e.type_id = t.id
		WHERE t.abbr = $1 AND e.code = $2`, abbr, code).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get entity ID for %s %s: %w", abbr, code, err)
	}
	return id, nil
}
