package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Column describes one live table column. Names and types are lowercased.
type Column struct {
	Name     string
	Type     string
	Nullable bool
}

// showColumn is a row of mysql's SHOW COLUMNS.
type showColumn struct {
	Field string
	Type  string
	Null  string
}

// GetTableColumns lists the columns of table. A missing table yields no
// columns and no error, so callers can report every column as missing.
func GetTableColumns(db *gorm.DB, table string) ([]Column, error) {
	if db.Dialector.Name() == "mysql" {
		var rows []showColumn
		if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", table)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
		}
		cols := make([]Column, 0, len(rows))
		for _, r := range rows {
			cols = append(cols, Column{
				Name:     strings.ToLower(r.Field),
				Type:     strings.ToLower(r.Type),
				Nullable: strings.EqualFold(r.Null, "yes"),
			})
		}
		return cols, nil
	}

	m := db.Migrator()
	if !m.HasTable(table) {
		return []Column{}, nil
	}
	types, err := m.ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", table, err)
	}
	cols := make([]Column, 0, len(types))
	for _, ct := range types {
		typ, ok := ct.ColumnType()
		if !ok || typ == "" {
			typ = ct.DatabaseTypeName()
		}
		nullable, _ := ct.Nullable()
		cols = append(cols, Column{
			Name:     strings.ToLower(ct.Name()),
			Type:     strings.ToLower(typ),
			Nullable: nullable,
		})
	}
	return cols, nil
}
