package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"careerday/shared/failure"
	"careerday/shared/validator"

	"github.com/stretchr/testify/assert"
)

type bookRequest struct {
	Attendee string `json:"attendee" validate:"required,attendee"`
	Slot     string `json:"slot"     validate:"required,slot"`
	Kind     string `json:"kind"     validate:"omitempty,oneof=interview roundtable"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    bookRequest
		wantErr string
	}{
		{
			name: "valid",
			data: bookRequest{Attendee: "ada@example.com", Slot: "11:30"},
		},
		{
			name: "display name address",
			data: bookRequest{Attendee: "Ada Lovelace <ada@example.com>", Slot: "14:45"},
		},
		{
			name:    "missing slot",
			data:    bookRequest{Attendee: "ada@example.com"},
			wantErr: "slot is required",
		},
		{
			name:    "slot without leading zero",
			data:    bookRequest{Attendee: "ada@example.com", Slot: "9:30"},
			wantErr: "slot must be a time of day formatted as HH:MM",
		},
		{
			name:    "slot out of range",
			data:    bookRequest{Attendee: "ada@example.com", Slot: "25:00"},
			wantErr: "slot must be a time of day formatted as HH:MM",
		},
		{
			name:    "bad attendee",
			data:    bookRequest{Attendee: "not an address", Slot: "11:30"},
			wantErr: "attendee must be a valid attendee address",
		},
		{
			name:    "every failure reported",
			data:    bookRequest{Attendee: "nope", Slot: "7pm"},
			wantErr: "attendee must be a valid attendee address; slot must be a time of day formatted as HH:MM",
		},
		{
			name:    "bad kind",
			data:    bookRequest{Attendee: "ada@example.com", Slot: "11:30", Kind: "party"},
			wantErr: "kind must be one of interview, roundtable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	var req bookRequest

	err := validator.Validate(strings.NewReader(`{"attendee":"ada@example.com","slot":"12:00"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "12:00", req.Slot)

	err = validator.Validate(strings.NewReader(`{"attendee":`), &req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("16:15", "slot"))
	assert.Error(t, validator.ValidateVar("16:15:00", "slot"))
	assert.EqualError(t, validator.ValidateVar("", "required"), "value is required")
}
