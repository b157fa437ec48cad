package repository

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"careerday/shared/constant"
	"careerday/shared/dto"
	"careerday/shared/logger"

	"github.com/jmoiron/sqlx"
)

// InsertQuery is the named INSERT for every column T owns, followed by suffix (ON CONFLICT, RETURNING).
func (repo *Repository[T]) InsertQuery(suffix string) string {
	placeholders := make([]string, len(repo.insertColumns))
	for i, col := range repo.insertColumns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.insertColumns, ", "), strings.Join(placeholders, ", "))
	if suffix != "" {
		query += " " + suffix
	}

	return query
}

// write runs a named statement on exec and wraps failures with the operation name.
func (repo *Repository[T]) write(ctx context.Context, exec execer, op, query string, arg any) error {
	ctx, scope := repo.newScope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to %s data (%s): %w", op, repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.write(ctx, repo.db.Write, "insert", repo.InsertQuery(""), model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.write(ctx, sqltx, "insert", repo.InsertQuery(""), model)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	return repo.write(ctx, repo.db.Write, "delete", fmt.Sprintf("DELETE FROM %s %s", repo.table, where), args)
}

// Update sets the columns of mod on every row matching filter. An empty filter is refused.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	assignments := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, mod)

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)

	return repo.write(ctx, repo.db.Write, "update", query, args)
}
