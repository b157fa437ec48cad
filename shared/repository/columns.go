package repository

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"careerday/shared/dto"
)

type column struct {
	name  string
	table string
	alias string
}

func (c column) qualified() string {
	return c.table + "." + c.name
}

func (c column) selectExpr() string {
	if c.alias != "" {
		return fmt.Sprintf("%s AS %s", c.qualified(), c.alias)
	}

	return c.qualified()
}

// selectList renders the SELECT list, restricted to names when any are given.
func (repo *Repository[T]) selectList(names ...string) string {
	exprs := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(names) > 0 && !slices.Contains(names, col.name) {
			continue
		}

		exprs = append(exprs, col.selectExpr())
	}

	return strings.Join(exprs, ", ")
}

// orderBy only sorts by columns T maps, bare or table qualified.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if params.SortBy == "" || params.SortDir == "" {
		return ""
	}

	idx := slices.IndexFunc(repo.columns, func(col column) bool {
		return params.SortBy == col.name || params.SortBy == col.qualified() || (col.alias != "" && params.SortBy == col.alias)
	})
	if idx == -1 {
		return ""
	}

	return fmt.Sprintf("ORDER BY %s %s", repo.columns[idx].qualified(), params.SortDir)
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: source, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: source})
		}
	}

	return columns, insertColumns
}
