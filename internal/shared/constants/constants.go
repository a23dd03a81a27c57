package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeyTicketSID = "ticket_sid"

	// Database table names
	TableServices        = "services"
	TableQueues          = "queues"
	TableTickets         = "tickets"
	TableCounters        = "counters"
	TableTicketEvents    = "ticket_events"
	TableQueueDailyStats = "queue_daily_stats"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
	ErrMsgQueueNotAccepting   = "this queue is no longer accepting customers"
	ErrMsgFinishCurrentFirst  = "finish the current ticket before calling the next one"
)
