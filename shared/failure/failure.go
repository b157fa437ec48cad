// Package failure carries the HTTP status and decline reason of an error up to the transport layer.
package failure

import (
	"errors"
	"net/http"
)

// Reason is a machine readable code attached to declined business outcomes.
type Reason string

const (
	ReasonSlotTaken          Reason = "slot_taken"
	ReasonSlotConflict       Reason = "slot_conflict"
	ReasonInvalidSlot        Reason = "invalid_slot"
	ReasonTableFull          Reason = "table_full"
	ReasonAlreadyHoldsTable  Reason = "already_holds_table"
	ReasonTooLateToCancel    Reason = "too_late_to_cancel"
	ReasonCancellationClosed Reason = "cancellation_closed"
	ReasonEventNotActive     Reason = "event_not_active"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  Reason `json:"reason,omitempty"`
}

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// fromError keeps nil as nil so callers can wrap unconditionally.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return newFailure(code, err.Error())
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg)
}

func BadRequestWithReason(reason Reason, msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg, Reason: reason}
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, msg)
}

func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// NotFound takes the full message, e.g. "booking not found".
func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, msg)
}

// Declined is a request that was understood but refused by a business rule.
func Declined(reason Reason, msg string) error {
	return &Failure{Code: http.StatusUnprocessableEntity, Message: msg, Reason: reason}
}

// As finds the Failure in err's chain.
func As(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}

// GetCode defaults to 500 for errors that carry no Failure.
func GetCode(err error) int {
	if fail, ok := As(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func GetReason(err error) Reason {
	if fail, ok := As(err); ok {
		return fail.Reason
	}

	return ""
}
