package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAccount is the identity payload returned by the external account
// service. The auth flows treat it as opaque: it is forwarded into the
// bearer token and the verification response unchanged.
type UserAccount struct {
	ID        uuid.UUID `json:"id"`
	MSISDN    string    `json:"msisdn"`
	FullName  string    `json:"full_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountResult is the coded envelope returned by the account service.
// Code 200 is the success sentinel; any other value is forwarded verbatim
// to the caller of the auth flows.
type AccountResult struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    *UserAccount `json:"data,omitempty"`
}
