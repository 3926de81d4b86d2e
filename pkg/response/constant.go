package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Internal server error"
	MessageUnauthorized  = "Unauthorized"
	MessageForbidden     = "Access denied: Insufficient permissions"
	successErrorCode     = 0
)
