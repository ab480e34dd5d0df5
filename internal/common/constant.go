package common

// AuthorizationHeaderName is the HTTP header used to carry the bearer token
// on authenticated requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is set on every outbound request to a fresh UUID so
// server logs can correlate a call with a client session.
const RequestIDHeaderName = "X-Request-Id"
