package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyCompanyID contextKey = "company_id"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAttendee  = "attendee"
	RoleCompany   = "company"
	RoleOrganizer = "organizer"
)

const (
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"
)

const (
	RequestParamID        = "id"
	RequestParamEventID   = "eventID"
	RequestParamCompanyID = "companyID"
	RequestParamBookingID = "bookingID"
	RequestParamTableID   = "tableID"
)

const (
	DefaultValuePage  = 1
	DefaultValueLimit = 10
	MaxValueLimit     = 100
)

const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation      = "23505"
	PqErrorCodeFkViolation          = "23503"
	PqErrorCodeSerializationFailure = "40001"
	PqErrorCodeDeadlockDetected     = "40P01"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	SlotTimeFormat = "15:04"
)

const (
	OtelServiceScopeName     = "service"
	OtelRepositoryScopeName  = "repository"
	OtelHandlerScopeName     = "handler"
	OtelTransactionScopeName = "transaction"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderRetryAfter         = "Retry-After"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorInternal             = "internal server error"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	NotificationSinkNone     = "none"
	NotificationSinkKafka    = "kafka"
	NotificationSinkRabbitMQ = "rabbitmq"
)

const (
	CachePrefixActiveEvent    = "event:active"
	CachePrefixEventCompanies = "company:event"
)

const (
	Asterix = "*"
	Empty   = ""
)
