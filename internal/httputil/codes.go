package httputil

// Machine-readable error codes returned alongside human-readable messages.
const (
	CodeInvalidRequestBody = "invalid_request_body"
	CodeValidationFailed   = "validation_failed"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUsernameTaken      = "username_taken"
	CodeEmailTaken         = "email_taken"
	CodeMissingAuth        = "missing_authentication"
	CodeInvalidAuthHeader  = "invalid_auth_header"
	CodeInvalidToken       = "invalid_token"
	CodeNotFound           = "not_found"
	CodePersistenceFailed  = "persistence_failed"
	CodeTooManyRequests    = "too_many_requests"
	CodeInternalError      = "internal_error"
)
