package database

import (
	"strings"

	"gorm.io/gorm"
)

// TableExists reports whether a table or view with the given name exists.
func TableExists(db *gorm.DB, name string) (bool, error) {
	matches, err := ListTablesLike(db, name)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if strings.EqualFold(m, name) {
			return true, nil
		}
	}
	return false, nil
}

// ListTablesLike returns the names of tables and views matching pattern.
// The pattern uses SQL LIKE syntax ('%' wildcard).
func ListTablesLike(db *gorm.DB, pattern string) ([]string, error) {
	var names []string

	if db.Dialector.Name() == "sqlite" {
		// SQLite keeps tables and views in sqlite_master.
		err := db.Raw(
			"SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name LIKE ?",
			pattern,
		).Scan(&names).Error
		if err != nil {
			return nil, err
		}
		return names, nil
	}

	rows, err := db.Raw("SHOW TABLES LIKE ?", pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
