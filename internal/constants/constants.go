package constants

// Context keys shared between middleware and handlers.
const (
	ContextKeyUser = "current_user"
)

// Password policy.
const (
	MinPasswordLength = 8
	BcryptCost        = 10
)
