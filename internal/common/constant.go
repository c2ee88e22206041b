package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix is the scheme prefix expected in the authorization header.
const BearerPrefix = "Bearer"
