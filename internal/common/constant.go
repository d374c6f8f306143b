// Package common contains shared constants and sentinel errors used across
// Puptrack components.
package common

// AuthorizationHeaderName is the HTTP header carrying the access token.
// The mobile client sends the raw token; a "Bearer " prefix is tolerated.
const AuthorizationHeaderName = "Authorization"
