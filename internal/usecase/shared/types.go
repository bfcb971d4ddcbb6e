package shared

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller as carried by the access token.
type Actor struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// Minimal snapshot for command read operations
type PaymentMethodSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProviderRef string
	Brand       string
	Last4       string
}
