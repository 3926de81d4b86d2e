package middleware

const (
	defaultAccessCookieName = "accessToken"
	bearerScheme            = "bearer"

	MessageMissingToken     = "No token provided. Send token in Authorization header as: Bearer YOUR_TOKEN"
	MessageInvalidToken     = "Invalid or expired token"
	MessageNotAuthenticated = "User not authenticated"
)
