package postgres_test

import (
	"errors"
	"fmt"
	"testing"

	"careerday/infras/postgres"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	serialization := &pq.Error{Code: "40001"}
	deadlock := &pq.Error{Code: "40P01"}
	unique := &pq.Error{Code: "23505"}
	fk := &pq.Error{Code: "23503"}

	assert.True(t, postgres.IsRetryable(serialization))
	assert.True(t, postgres.IsRetryable(fmt.Errorf("failed to insert data (booking): %w", deadlock)))
	assert.False(t, postgres.IsRetryable(unique))
	assert.False(t, postgres.IsRetryable(errors.New("connection refused")))

	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("wrapped: %w", unique)))
	assert.False(t, postgres.IsUniqueViolation(fk))
	assert.True(t, postgres.IsFkViolation(fk))
	assert.False(t, postgres.IsFkViolation(nil))
}
