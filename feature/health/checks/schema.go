package checks

import (
	"fmt"
	"reflect"
	"strings"

	"asset-sorter/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing a gorm model with its table.
type SchemaReport struct {
	Table          string   `json:"table"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

// CheckSchema verifies the table of model has every column its gorm tags
// declare. Columns with an explicit "type:" tag are also type checked.
func CheckSchema(db *gorm.DB, model any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	val := reflect.TypeOf(model)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model %s is not a struct", val)
	}

	tabler, ok := reflect.New(val).Interface().(interface{ TableName() string })
	if !ok {
		return nil, fmt.Errorf("model %s does not implement TableName", val.Name())
	}

	report := &SchemaReport{
		Table:          tabler.TableName(),
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}

	actualCols, err := database.GetTableColumns(db, report.Table)
	if err != nil {
		return nil, err
	}

	actualMap := make(map[string]database.Column, len(actualCols))
	for _, col := range actualCols {
		actualMap[col.Name] = col
	}

	for i := 0; i < val.NumField(); i++ {
		gormTag := val.Field(i).Tag.Get("gorm")
		colName := parseGormTag(gormTag, "column")
		if colName == "" || gormTag == "-" {
			continue
		}

		actCol, exists := actualMap[strings.ToLower(colName)]
		if !exists {
			report.MissingColumns = append(report.MissingColumns, colName)
			report.Status = "error"
			continue
		}

		expType := strings.ToLower(parseGormTag(gormTag, "type"))
		if expType != "" && !strings.Contains(actCol.Type, expType) {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", colName, expType, actCol.Type))
			report.Status = "error"
		}
	}

	return report, nil
}

// parseGormTag returns the value of key in a gorm struct tag.
func parseGormTag(tag, key string) string {
	for _, p := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(strings.TrimSpace(p), key+":"); ok {
			return v
		}
	}
	return ""
}
