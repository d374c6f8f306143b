// Package common defines shared constants and sentinel errors used across
// the Puptrack backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")
	ErrTimeout      = errors.New("operation timed out")

	// Credential errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedHash      = errors.New("malformed password hash")

	// Token lifecycle errors.
	ErrInvalidToken          = errors.New("invalid token")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")

	// External identity (Google) errors.
	ErrIdentityTokenInvalid    = errors.New("identity token invalid")
	ErrIdentityTokenIncomplete = errors.New("identity token missing email claim")
)
