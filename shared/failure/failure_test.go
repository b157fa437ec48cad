package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"careerday/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{name: "bad request", err: failure.BadRequest(errors.New("bad slot")), code: http.StatusBadRequest, msg: "bad slot"},
		{name: "bad request from string", err: failure.BadRequestFromString("missing field"), code: http.StatusBadRequest, msg: "missing field"},
		{name: "unauthorized", err: failure.Unauthorized("token expired"), code: http.StatusUnauthorized, msg: "token expired"},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, msg: "db down"},
		{name: "not found", err: failure.NotFound("booking not found"), code: http.StatusNotFound, msg: "booking not found"},
		{name: "conflict", err: failure.Conflict("company already exists"), code: http.StatusConflict, msg: "company already exists"},
		{name: "forbidden", err: failure.Forbidden("not your booking"), code: http.StatusForbidden, msg: "not your booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.msg, tt.err.Error())
			assert.Empty(t, failure.GetReason(tt.err))
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestDeclined(t *testing.T) {
	err := failure.Declined(failure.ReasonTooLateToCancel, "too late to cancel")
	wrapped := fmt.Errorf("failed to cancel booking: %w", err)

	assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(wrapped))
	assert.Equal(t, failure.ReasonTooLateToCancel, failure.GetReason(wrapped))
}

func TestGetCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
	assert.Equal(t, failure.Reason(""), failure.GetReason(errors.New("plain")))
}

func TestAs(t *testing.T) {
	fail, ok := failure.As(fmt.Errorf("wrapped: %w", failure.ForbiddenError))
	assert.True(t, ok)
	assert.Same(t, failure.ForbiddenError, fail)

	_, ok = failure.As(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
}
