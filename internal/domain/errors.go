package domain

import "errors"

var (
	ErrMalformedPayload  = errors.New("login payload is not a flat object of string values")
	ErrMissingTag        = errors.New("no hash provided")
	ErrMissingCredential = errors.New("telegram bot token is not configured")
	ErrInvalidSignature  = errors.New("invalid authentication data")
	ErrUnauthorized      = errors.New("unauthorized")
)
